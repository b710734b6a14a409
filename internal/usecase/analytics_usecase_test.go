package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleRecord(productID, quantity, price int64, sku, name string) SaleRecord {
	return SaleRecord{
		Sale:        domain.Sale{ProductID: productID, Quantity: quantity, Price: price},
		ProductName: name,
		ProductSKU:  sku,
	}
}

func TestSummarizeSalesTotalsAndAOV(t *testing.T) {
	records := []SaleRecord{
		saleRecord(1, 2, 10000, "CEM01", "Cement"),
		saleRecord(1, 3, 10000, "CEM01", "Cement"),
	}

	summary := summarizeSales(records, 5)

	assert.Equal(t, int64(2), summary.TotalSales)
	assert.Equal(t, int64(50000), summary.TotalRevenue)
	assert.Equal(t, int64(5), summary.TotalUnits)
	assert.Equal(t, int64(25000), summary.AverageOrderValue)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, int64(50000), summary.TopProducts[0].Revenue)
	assert.Equal(t, int64(5), summary.TopProducts[0].Quantity)
}

func TestSummarizeSalesEmptyWindow(t *testing.T) {
	summary := summarizeSales(nil, 5)

	assert.Equal(t, int64(0), summary.TotalSales)
	assert.Equal(t, int64(0), summary.AverageOrderValue)
	assert.Empty(t, summary.TopProducts)
}

func TestSummarizeSalesDeletedProductCountsInTotalsOnly(t *testing.T) {
	records := []SaleRecord{
		saleRecord(1, 1, 10000, "CEM01", "Cement"),
		saleRecord(99, 2, 5000, "", ""), // продукт удалён
	}

	summary := summarizeSales(records, 5)

	assert.Equal(t, int64(2), summary.TotalSales)
	assert.Equal(t, int64(20000), summary.TotalRevenue)
	assert.Equal(t, int64(3), summary.TotalUnits)
	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, int64(1), summary.TopProducts[0].ProductID)
}

func TestSummarizeSalesTopLimitAndOrder(t *testing.T) {
	records := []SaleRecord{
		saleRecord(1, 1, 100, "A", "A"),
		saleRecord(2, 1, 300, "B", "B"),
		saleRecord(3, 1, 200, "C", "C"),
		saleRecord(4, 1, 600, "D", "D"),
		saleRecord(5, 1, 500, "E", "E"),
		saleRecord(6, 1, 400, "F", "F"),
	}

	summary := summarizeSales(records, 5)

	require.Len(t, summary.TopProducts, 5)
	assert.Equal(t, int64(4), summary.TopProducts[0].ProductID)
	assert.Equal(t, int64(5), summary.TopProducts[1].ProductID)
	assert.Equal(t, int64(6), summary.TopProducts[2].ProductID)
	assert.Equal(t, int64(2), summary.TopProducts[3].ProductID)
	assert.Equal(t, int64(3), summary.TopProducts[4].ProductID)
}

func TestSummarizeSalesStableOnRevenueTies(t *testing.T) {
	records := []SaleRecord{
		saleRecord(1, 1, 100, "A", "A"),
		saleRecord(2, 1, 100, "B", "B"),
		saleRecord(3, 1, 100, "C", "C"),
	}

	summary := summarizeSales(records, 5)

	require.Len(t, summary.TopProducts, 3)
	assert.Equal(t, int64(1), summary.TopProducts[0].ProductID)
	assert.Equal(t, int64(2), summary.TopProducts[1].ProductID)
	assert.Equal(t, int64(3), summary.TopProducts[2].ProductID)
}

func TestGetStats(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Hour)
	stale := now.Add(-60 * 24 * time.Hour)

	productRepo := &fakeProductRepo{
		ListFn: func(_ context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Quantity: 100, ReorderLevel: 10, Price: 100, LastSoldAt: &recent}, // in stock
				{ID: 2, Quantity: 5, ReorderLevel: 10, Price: 200, LastSoldAt: &recent},   // low
				{ID: 3, Quantity: 20, ReorderLevel: 10, Price: 300, LastSoldAt: &stale},   // dead
				{ID: 4, Quantity: 0, ReorderLevel: 10, Price: 400, LastSoldAt: &recent},   // out
			}, nil
		},
	}

	uc := newTestUC(productRepo, nil, nil, nil, nil)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(1), stats.DeadStockCount)
	assert.Equal(t, int64(100*100+5*200+20*300), stats.TotalValue)
}

func TestGetSalesSummaryPeriodLabel(t *testing.T) {
	saleRepo := &fakeSaleRepo{
		ListSinceFn: func(_ context.Context, _ time.Time, _ int) ([]SaleRecord, error) {
			return nil, nil
		},
	}

	uc := newTestUC(nil, saleRepo, nil, nil, nil)

	summary, err := uc.GetSalesSummary(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "Last 30 days", summary.Period)

	summary, err = uc.GetSalesSummary(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Last 7 days", summary.Period)
}
