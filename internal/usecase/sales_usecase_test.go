package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSaleSnapshotsProductPrice(t *testing.T) {
	productRepo := &fakeProductRepo{
		DecrementStockFn: func(_ context.Context, id, quantity int64) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Cement", SKU: "CEM01", Quantity: 100 - quantity, Price: 35000}, nil
		},
	}

	var createdSale *domain.Sale
	saleRepo := &fakeSaleRepo{
		CreateFn: func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
			createdSale = sale
			sale.ID = 10
			sale.SaleDate = time.Now()
			return sale, nil
		},
	}

	var outboxEvent *OutboxEvent
	outboxRepo := &fakeOutboxRepo{
		CreateFn: func(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
			outboxEvent = event
			return event, nil
		},
	}

	uc := newTestUC(productRepo, saleRepo, outboxRepo, nil, nil)

	res, err := uc.RecordSale(context.Background(), NewRecordSaleReq(1, 2, nil))
	require.NoError(t, err)

	assert.Equal(t, int64(35000), createdSale.Price)
	assert.Equal(t, int64(98), res.Product.Quantity)
	assert.Equal(t, int64(10), res.Sale.ID)

	require.NotNil(t, outboxEvent)
	assert.Equal(t, SaleRecorded, outboxEvent.EventType)
	assert.Equal(t, Pending, outboxEvent.Status)

	var payload SaleRecordedEvent
	require.NoError(t, json.Unmarshal(outboxEvent.Payload, &payload))
	assert.Equal(t, int64(10), payload.SaleID)
	assert.Equal(t, int64(2), payload.Quantity)
	assert.Equal(t, int64(35000), payload.Price)
}

func TestRecordSaleOverridePrice(t *testing.T) {
	productRepo := &fakeProductRepo{
		DecrementStockFn: func(_ context.Context, id, quantity int64) (*domain.Product, error) {
			return &domain.Product{ID: id, Quantity: 10, Price: 35000}, nil
		},
	}

	var createdSale *domain.Sale
	saleRepo := &fakeSaleRepo{
		CreateFn: func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
			createdSale = sale
			return sale, nil
		},
	}

	outboxRepo := &fakeOutboxRepo{
		CreateFn: func(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
			return event, nil
		},
	}

	uc := newTestUC(productRepo, saleRepo, outboxRepo, nil, nil)

	discounted := int64(30000)
	_, err := uc.RecordSale(context.Background(), NewRecordSaleReq(1, 1, &discounted))
	require.NoError(t, err)
	assert.Equal(t, int64(30000), createdSale.Price)
}

func TestRecordSaleValidation(t *testing.T) {
	uc := newTestUC(&fakeProductRepo{}, &fakeSaleRepo{}, &fakeOutboxRepo{}, nil, nil)
	ctx := context.Background()

	_, err := uc.RecordSale(ctx, NewRecordSaleReq(1, 0, nil))
	assert.ErrorIs(t, err, e.ErrQuantityNotPositive)

	_, err = uc.RecordSale(ctx, NewRecordSaleReq(1, -3, nil))
	assert.ErrorIs(t, err, e.ErrQuantityNotPositive)

	negative := int64(-100)
	_, err = uc.RecordSale(ctx, NewRecordSaleReq(1, 1, &negative))
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestRecordSaleInsufficientStockCreatesNothing(t *testing.T) {
	productRepo := &fakeProductRepo{
		DecrementStockFn: func(_ context.Context, _, _ int64) (*domain.Product, error) {
			return nil, e.ErrInsufficientStock
		},
	}

	saleCreated := false
	saleRepo := &fakeSaleRepo{
		CreateFn: func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
			saleCreated = true
			return sale, nil
		},
	}

	uc := newTestUC(productRepo, saleRepo, &fakeOutboxRepo{}, nil, nil)

	_, err := uc.RecordSale(context.Background(), NewRecordSaleReq(1, 999, nil))
	assert.ErrorIs(t, err, e.ErrInsufficientStock)
	assert.False(t, saleCreated)
}

func TestGetSalesHistoryDefaultsAndClamp(t *testing.T) {
	var gotSince time.Time
	var gotLimit int
	saleRepo := &fakeSaleRepo{
		ListSinceFn: func(_ context.Context, since time.Time, limit int) ([]SaleRecord, error) {
			gotSince = since
			gotLimit = limit
			return []SaleRecord{}, nil
		},
	}

	uc := newTestUC(nil, saleRepo, nil, nil, nil)
	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	_, err := uc.GetSalesHistory(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(-30*24*time.Hour), gotSince)
	assert.Equal(t, 100, gotLimit)

	_, err = uc.GetSalesHistory(context.Background(), 7, 500)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(-7*24*time.Hour), gotSince)
	assert.Equal(t, 100, gotLimit)

	_, err = uc.GetSalesHistory(context.Background(), 7, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
}
