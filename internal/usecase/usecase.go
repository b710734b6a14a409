package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
)

type InventoryUC interface {
	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, req *SearchProductsReq) ([]domain.Product, error)
	UpdateQuantity(ctx context.Context, id, quantity int64) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*StatsRes, error)

	RecordSale(ctx context.Context, req *RecordSaleReq) (*RecordSaleRes, error)
	GetSalesHistory(ctx context.Context, days, limit int) ([]SaleRecord, error)
	GetSalesSummary(ctx context.Context, days int) (*SalesSummaryRes, error)

	GetAlerts(ctx context.Context) ([]domain.Alert, error)
	AcknowledgeAlert(ctx context.Context, alertID string) error

	GenerateInsights(ctx context.Context) (*InsightRes, error)
}
