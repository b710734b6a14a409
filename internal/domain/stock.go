package domain

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

// DefaultDeadStockWindow — окно без продаж, после которого остаток считается мёртвым
const DefaultDeadStockWindow = 30 * 24 * time.Hour

// StockCategory — категория остатка для выборок и поиска.
type StockCategory string

const (
	CategoryLowStock   StockCategory = "low-stock"
	CategoryDeadStock  StockCategory = "dead-stock"
	CategoryOutOfStock StockCategory = "out-of-stock"
	CategoryInStock    StockCategory = "in-stock"
)

// ParseStockCategory валидирует строковое представление категории.
func ParseStockCategory(s string) (StockCategory, error) {
	switch StockCategory(s) {
	case CategoryLowStock, CategoryDeadStock, CategoryOutOfStock, CategoryInStock:
		return StockCategory(s), nil
	default:
		return "", e.ErrUnknownStockCategory
	}
}

// Предикаты классификации остатка. Оси независимы: позиция может быть
// одновременно low-stock и dead-stock (медленная и почти исчерпанная).

// IsOutOfStock — остаток полностью исчерпан.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}

// IsLowStock — остаток положителен, но не выше порога дозаказа.
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.ReorderLevel
}

// IsInStock — остаток выше порога дозаказа.
func (p *Product) IsInStock() bool {
	return p.Quantity > p.ReorderLevel
}

// IsDeadStock — остаток положителен и позиция не продавалась дольше окна
// (или не продавалась вообще). Позиция с нулевым остатком мёртвой не бывает:
// мёртвый остаток — это замороженный в непроданном товаре капитал.
func (p *Product) IsDeadStock(now time.Time, window time.Duration) bool {
	if p.Quantity <= 0 {
		return false
	}
	if p.LastSoldAt == nil {
		return true
	}
	return p.LastSoldAt.Before(now.Add(-window))
}

// InCategory проверяет принадлежность позиции категории на момент now.
func (p *Product) InCategory(category StockCategory, now time.Time, window time.Duration) bool {
	switch category {
	case CategoryLowStock:
		return p.IsLowStock()
	case CategoryDeadStock:
		return p.IsDeadStock(now, window)
	case CategoryOutOfStock:
		return p.IsOutOfStock()
	case CategoryInStock:
		return p.IsInStock()
	default:
		return false
	}
}
