package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/cfg"
	"github.com/DRSN-tech/inventory-backend/internal/domain"
)

// Ручные фейки репозиториев: поведение задаётся функциями-полями.

type fakeProductRepo struct {
	CreateFn         func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListFn           func(ctx context.Context) ([]domain.Product, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Product, error)
	UpdateQuantityFn func(ctx context.Context, id, quantity int64) (*domain.Product, error)
	DecrementStockFn func(ctx context.Context, id, quantity int64) (*domain.Product, error)
	DeleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return f.CreateFn(ctx, product)
}

func (f *fakeProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return f.ListFn(ctx)
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeProductRepo) UpdateQuantity(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	return f.UpdateQuantityFn(ctx, id, quantity)
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	return f.DecrementStockFn(ctx, id, quantity)
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeSaleRepo struct {
	CreateFn    func(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	ListSinceFn func(ctx context.Context, since time.Time, limit int) ([]SaleRecord, error)
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	return f.CreateFn(ctx, sale)
}

func (f *fakeSaleRepo) ListSince(ctx context.Context, since time.Time, limit int) ([]SaleRecord, error) {
	return f.ListSinceFn(ctx, since, limit)
}

type fakeOutboxRepo struct {
	CreateFn func(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	return f.CreateFn(ctx, event)
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, _ int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, _ int64) error {
	return nil
}

type fakeCacheRepo struct {
	AcknowledgeAlertFn   func(ctx context.Context, alertID string) error
	AcknowledgedAlertsFn func(ctx context.Context, alertIDs []string) (map[string]bool, error)
	GetInsightFn         func(ctx context.Context, key string) (string, error)
	SetInsightFn         func(ctx context.Context, key, text string) error
}

func (f *fakeCacheRepo) AcknowledgeAlert(ctx context.Context, alertID string) error {
	return f.AcknowledgeAlertFn(ctx, alertID)
}

func (f *fakeCacheRepo) AcknowledgedAlerts(ctx context.Context, alertIDs []string) (map[string]bool, error) {
	return f.AcknowledgedAlertsFn(ctx, alertIDs)
}

func (f *fakeCacheRepo) GetInsight(ctx context.Context, key string) (string, error) {
	return f.GetInsightFn(ctx, key)
}

func (f *fakeCacheRepo) SetInsight(ctx context.Context, key, text string) error {
	return f.SetInsightFn(ctx, key, text)
}

// fakeTransactor выполняет fn без настоящей транзакции.
type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInsight struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeInsight) GenerateInsightText(ctx context.Context, prompt string) (string, error) {
	return f.GenerateFn(ctx, prompt)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func testInventoryCfg() *cfg.InventoryCfg {
	return &cfg.InventoryCfg{
		DeadStockWindow:   domain.DefaultDeadStockWindow,
		TopProductsLimit:  5,
		SalesHistoryLimit: 100,
	}
}

func newTestUC(
	productRepo ProductRepository,
	saleRepo SaleRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	insight InsightInfra,
) *InventoryUseCase {
	uc := NewInventoryUC(
		productRepo,
		saleRepo,
		outboxRepo,
		cacheRepo,
		fakeTransactor{},
		insight,
		nopLogger{},
		testInventoryCfg(),
	)
	return uc
}
