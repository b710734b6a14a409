package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

// GetStats считает сводку по складу на момент запроса, без кэширования.
func (u *InventoryUseCase) GetStats(ctx context.Context) (*StatsRes, error) {
	const op = "InventoryUseCase.GetStats"

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := u.now()
	stats := &StatsRes{TotalProducts: int64(len(products))}
	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockCount++
		}
		if p.IsDeadStock(now, u.cfg.DeadStockWindow) {
			stats.DeadStockCount++
		}
		stats.TotalValue += p.StockValue()
	}

	return stats, nil
}

// GetSalesSummary агрегирует продажи за окно days: количество, выручка,
// единицы, средний чек и топ продуктов по выручке.
func (u *InventoryUseCase) GetSalesSummary(ctx context.Context, days int) (*SalesSummaryRes, error) {
	const op = "InventoryUseCase.GetSalesSummary"

	if days <= 0 {
		days = defaultSalesWindowDays
	}

	since := u.now().Add(-time.Duration(days) * 24 * time.Hour)
	records, err := u.saleRepo.ListSince(ctx, since, 0)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summary := summarizeSales(records, u.cfg.TopProductsLimit)
	summary.Period = fmt.Sprintf("Last %d days", days)

	return summary, nil
}

// summarizeSales — чистая агрегация журнала. Продажи удалённых продуктов
// (неразрешённый SKU) в топ не попадают, но учитываются в итогах.
func summarizeSales(records []SaleRecord, topLimit int) *SalesSummaryRes {
	summary := &SalesSummaryRes{TopProducts: make([]TopProduct, 0)}

	perProduct := make(map[int64]*TopProduct)
	order := make([]int64, 0)
	for _, r := range records {
		summary.TotalSales++
		summary.TotalRevenue += r.Sale.Revenue()
		summary.TotalUnits += r.Sale.Quantity

		if r.ProductSKU == "" {
			continue
		}

		tp, ok := perProduct[r.Sale.ProductID]
		if !ok {
			tp = &TopProduct{
				ProductID: r.Sale.ProductID,
				Name:      r.ProductName,
				SKU:       r.ProductSKU,
			}
			perProduct[r.Sale.ProductID] = tp
			order = append(order, r.Sale.ProductID)
		}
		tp.Quantity += r.Sale.Quantity
		tp.Revenue += r.Sale.Revenue()
	}

	if summary.TotalSales > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / summary.TotalSales
	}

	top := make([]TopProduct, 0, len(order))
	for _, id := range order {
		top = append(top, *perProduct[id])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue > top[j].Revenue
	})
	if len(top) > topLimit {
		top = top[:topLimit]
	}
	summary.TopProducts = top

	return summary
}
