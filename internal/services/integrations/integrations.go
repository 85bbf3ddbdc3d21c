// Package integrations содержит точки интеграции с внешними сервисами:
// публикацию рецептов в соцсетях и заказ продуктов.
package integrations

import (
	"context"
)

// Сообщения-подтверждения заглушек.
const (
	ShareMockMessage   = "Shared recipe to social media (mock)"
	OrderMockMessage   = "Order placed successfully (mock)"
	OrderQueuedMessage = "Order placed successfully"
)

// Sharer публикует рецепт от имени пользователя.
type Sharer interface {
	Share(ctx context.Context, userUID string, payload any) (string, error)
}

// Orderer оформляет заказ продуктов для пользователя.
type Orderer interface {
	PlaceOrder(ctx context.Context, userUID string, payload any) (string, error)
}

// MockSharer подтверждает публикацию, ничего не отправляя.
type MockSharer struct{}

// Share возвращает ShareMockMessage.
func (MockSharer) Share(_ context.Context, _ string, _ any) (string, error) {
	return ShareMockMessage, nil
}

// MockOrderer подтверждает заказ, ничего не отправляя.
type MockOrderer struct{}

// PlaceOrder возвращает OrderMockMessage.
func (MockOrderer) PlaceOrder(_ context.Context, _ string, _ any) (string, error) {
	return OrderMockMessage, nil
}
