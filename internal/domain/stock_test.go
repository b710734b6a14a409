package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockPredicates(t *testing.T) {
	now := time.Now()
	recent := now.Add(-24 * time.Hour)
	stale := now.Add(-45 * 24 * time.Hour)

	tests := []struct {
		name       string
		product    Product
		outOfStock bool
		lowStock   bool
		inStock    bool
		deadStock  bool
	}{
		{
			name:       "zero quantity is out of stock only",
			product:    Product{Quantity: 0, ReorderLevel: 10, LastSoldAt: &stale},
			outOfStock: true,
		},
		{
			name:     "quantity at reorder level is low stock",
			product:  Product{Quantity: 10, ReorderLevel: 10, LastSoldAt: &recent},
			lowStock: true,
		},
		{
			name:     "quantity below reorder level is low stock",
			product:  Product{Quantity: 5, ReorderLevel: 10, LastSoldAt: &recent},
			lowStock: true,
		},
		{
			name:    "quantity above reorder level is in stock",
			product: Product{Quantity: 11, ReorderLevel: 10, LastSoldAt: &recent},
			inStock: true,
		},
		{
			name:      "never sold with positive quantity is dead stock",
			product:   Product{Quantity: 50, ReorderLevel: 10, LastSoldAt: nil},
			inStock:   true,
			deadStock: true,
		},
		{
			name:      "stale sale is dead stock",
			product:   Product{Quantity: 50, ReorderLevel: 10, LastSoldAt: &stale},
			inStock:   true,
			deadStock: true,
		},
		{
			name:      "low and dead at the same time",
			product:   Product{Quantity: 3, ReorderLevel: 10, LastSoldAt: &stale},
			lowStock:  true,
			deadStock: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.outOfStock, tc.product.IsOutOfStock())
			assert.Equal(t, tc.lowStock, tc.product.IsLowStock())
			assert.Equal(t, tc.inStock, tc.product.IsInStock())
			assert.Equal(t, tc.deadStock, tc.product.IsDeadStock(now, DefaultDeadStockWindow))
		})
	}
}

func TestIsDeadStockBoundary(t *testing.T) {
	now := time.Now()

	// Ровно на границе окна продажа ещё не мёртвая
	onBoundary := now.Add(-DefaultDeadStockWindow)
	p := Product{Quantity: 5, LastSoldAt: &onBoundary}
	assert.False(t, p.IsDeadStock(now, DefaultDeadStockWindow))

	justPast := onBoundary.Add(-time.Second)
	p.LastSoldAt = &justPast
	assert.True(t, p.IsDeadStock(now, DefaultDeadStockWindow))
}

func TestParseStockCategory(t *testing.T) {
	for _, valid := range []string{"low-stock", "dead-stock", "out-of-stock", "in-stock"} {
		cat, err := ParseStockCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, StockCategory(valid), cat)
	}

	_, err := ParseStockCategory("backordered")
	assert.Error(t, err)
}

func TestNewProductNormalizesSKU(t *testing.T) {
	p := NewProduct("Cement Bag", "cem01", 100, 35000, 10)
	assert.Equal(t, "CEM01", p.SKU)
}

func TestStockValue(t *testing.T) {
	p := Product{Quantity: 3, Price: 10050}
	assert.Equal(t, int64(30150), p.StockValue())
}
