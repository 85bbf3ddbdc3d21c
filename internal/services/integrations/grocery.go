package integrations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/mood-recipes/internal/config"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/mood-recipes/internal/lib/sl"
	"github.com/magabrotheeeer/mood-recipes/internal/metrics"
)

// GroceryOrder сообщение о заказе продуктов, публикуемое в очередь.
type GroceryOrder struct {
	OrderID   string    `json:"order_id"`
	UserUID   string    `json:"user_uid"`
	Payload   any       `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// ChannelSource выдает канал для публикации. Reset вызывается, когда канал
// оказался закрыт, и следующий Channel должен открыть новый.
type ChannelSource interface {
	Channel(ctx context.Context) (rabbitmq.Channel, error)
	Reset()
}

// AMQPOrderer публикует заказы в очередь RabbitMQ через размыкатель.
//
// Канал AMQP не безопасен для конкурентного использования, поэтому публикация
// выполняется под мьютексом.
type AMQPOrderer struct {
	mu      sync.Mutex
	source  ChannelSource
	queue   string
	breaker *gobreaker.CircuitBreaker[struct{}]
	now     func() time.Time
	log     *slog.Logger
}

// NewAMQPOrderer создает AMQPOrderer, публикующий в очередь queue.
func NewAMQPOrderer(source ChannelSource, queue string, cfg config.CircuitBreaker, log *slog.Logger) *AMQPOrderer {
	return &AMQPOrderer{
		source:  source,
		queue:   queue,
		breaker: NewBreaker("grocery-orders", cfg, log),
		now:     time.Now,
		log:     log,
	}
}

// PlaceOrder публикует заказ и возвращает подтверждение.
// При разомкнутом размыкателе возвращается gobreaker.ErrOpenState без обращения к брокеру.
func (o *AMQPOrderer) PlaceOrder(ctx context.Context, userUID string, payload any) (string, error) {
	const op = "integrations.AMQPOrderer.PlaceOrder"

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	order := GroceryOrder{
		OrderID:   uuid.NewString(),
		UserUID:   userUID,
		Payload:   payload,
		CreatedAt: o.now().UTC(),
	}
	_, err := o.breaker.Execute(func() (struct{}, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		return struct{}{}, o.publish(ctx, order)
	})
	if err != nil {
		metrics.GroceryOrders.WithLabelValues("failed").Inc()
		o.log.Error("failed to publish grocery order", slog.String("order_id", order.OrderID), sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	metrics.GroceryOrders.WithLabelValues("published").Inc()
	o.log.Info("grocery order published", slog.String("order_id", order.OrderID), slog.String("user_uid", userUID))
	return OrderQueuedMessage, nil
}

// publish отправляет заказ. Если канал закрыт брокером, он переоткрывается
// и отправка повторяется один раз.
func (o *AMQPOrderer) publish(ctx context.Context, order GroceryOrder) error {
	var err error
	for i := 0; i < 2; i++ {
		var ch rabbitmq.Channel
		ch, err = o.source.Channel(ctx)
		if err != nil {
			return err
		}
		err = rabbitmq.PublishMessage(ch, "", o.queue, order)
		if !errors.Is(err, amqp.ErrClosed) {
			return err
		}
		o.log.Warn("amqp channel closed, reopening", slog.String("queue", o.queue))
		o.source.Reset()
	}
	return err
}
