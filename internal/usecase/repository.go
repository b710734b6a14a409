package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
)

type ProductRepository interface {
	// Create добавляет позицию; возвращает e.ErrSKUExists при дубликате SKU.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// List возвращает все позиции, новые первыми.
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// UpdateQuantity устанавливает абсолютный остаток (не ниже нуля — проверяется выше).
	UpdateQuantity(ctx context.Context, id, quantity int64) (*domain.Product, error)
	// DecrementStock атомарно списывает остаток при условии его достаточности.
	// Возвращает e.ErrInsufficientStock, если условие не выполнено.
	DecrementStock(ctx context.Context, id, quantity int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	// ListSince возвращает продажи с saleDate >= since, новые первыми.
	// limit <= 0 — без ограничения.
	ListSince(ctx context.Context, since time.Time, limit int) ([]SaleRecord, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

// CacheRepository — состояние, живущее вне основного хранилища:
// флаги подтверждения алертов и кэш AI-текста.
type CacheRepository interface {
	AcknowledgeAlert(ctx context.Context, alertID string) error
	AcknowledgedAlerts(ctx context.Context, alertIDs []string) (map[string]bool, error)
	// GetInsight возвращает пустую строку при промахе кэша.
	GetInsight(ctx context.Context, key string) (string, error)
	SetInsight(ctx context.Context, key, text string) error
}
