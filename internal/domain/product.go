package domain

import (
	"strings"
	"time"
)

// DefaultReorderLevel — порог остатка по умолчанию для новых продуктов
const DefaultReorderLevel = 10

// Product описывает складскую позицию
type Product struct {
	ID           int64
	Name         string
	SKU          string // нормализуется в верхний регистр при создании
	Quantity     int64  // инвариант: никогда не отрицательно
	Price        int64  // Цена за единицу хранится в пайсах
	ReorderLevel int64
	LastSoldAt   *time.Time // nil — продукт ни разу не продавался
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewProduct(name, sku string, quantity, price, reorderLevel int64) *Product {
	return &Product{
		Name:         name,
		SKU:          strings.ToUpper(sku),
		Quantity:     quantity,
		Price:        price,
		ReorderLevel: reorderLevel,
	}
}

// StockValue возвращает стоимость остатка позиции в пайсах.
func (p *Product) StockValue() int64 {
	return p.Quantity * p.Price
}
