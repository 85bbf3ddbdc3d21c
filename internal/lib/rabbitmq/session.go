package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

// Session держит соединение и канал с объявленной очередью.
//
// Закрытие канала брокером отслеживается через NotifyClose: следующий вызов
// Channel откроет новый канал, а при разорванном соединении переподключится.
type Session struct {
	mu      sync.Mutex
	url     string
	queue   string
	retries int
	delay   time.Duration
	conn    *amqp.Connection
	ch      *amqp.Channel
}

// NewSession создает Session. Подключение выполняется при первом вызове Channel.
func NewSession(url, queue string, retries int, delay time.Duration) *Session {
	return &Session{
		url:     url,
		queue:   queue,
		retries: retries,
		delay:   delay,
	}
}

// Channel возвращает открытый канал, при необходимости восстанавливая соединение.
func (s *Session) Channel(ctx context.Context) (Channel, error) {
	const op = "rabbitmq.Session.Channel"
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil || s.conn.IsClosed() {
		s.dropChannel()
		conn, err := Connect(ctx, s.url, s.retries, s.delay)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.conn = conn
	}
	if s.ch == nil {
		ch, err := SetupChannel(s.conn, s.queue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.ch = ch
		go s.watch(ch, ch.NotifyClose(make(chan *amqp.Error, 1)))
	}
	return s.ch, nil
}

// Reset закрывает текущий канал. Следующий вызов Channel откроет новый.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropChannel()
}

// Close закрывает канал и соединение.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropChannel()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	if err != nil && !errors.Is(err, amqp.ErrClosed) {
		return fmt.Errorf("rabbitmq.Session.Close: %w", err)
	}
	return nil
}

func (s *Session) watch(ch *amqp.Channel, closed <-chan *amqp.Error) {
	<-closed
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ch == ch {
		s.ch = nil
	}
}

func (s *Session) dropChannel() {
	if s.ch != nil {
		_ = s.ch.Close()
		s.ch = nil
	}
}
