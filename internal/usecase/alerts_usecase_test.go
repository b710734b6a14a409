package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAlertsAppliesAcknowledgments(t *testing.T) {
	recent := time.Now().Add(-time.Hour)
	productRepo := &fakeProductRepo{
		ListFn: func(_ context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Name: "Cement", SKU: "CEM01", Quantity: 0, ReorderLevel: 10, LastSoldAt: &recent},
				{ID: 2, Name: "Paint", SKU: "PNT01", Quantity: 3, ReorderLevel: 10, LastSoldAt: &recent},
			}, nil
		},
	}

	cacheRepo := &fakeCacheRepo{
		AcknowledgedAlertsFn: func(_ context.Context, ids []string) (map[string]bool, error) {
			assert.ElementsMatch(t, []string{"1-outofstock", "2-lowstock"}, ids)
			return map[string]bool{"2-lowstock": true}, nil
		},
	}

	uc := newTestUC(productRepo, nil, nil, cacheRepo, nil)

	alerts, err := uc.GetAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, "1-outofstock", alerts[0].ID)
	assert.False(t, alerts[0].Acknowledged)
	assert.Equal(t, "2-lowstock", alerts[1].ID)
	assert.True(t, alerts[1].Acknowledged)
}

func TestGetAlertsCacheFailureDoesNotBreak(t *testing.T) {
	recent := time.Now().Add(-time.Hour)
	productRepo := &fakeProductRepo{
		ListFn: func(_ context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Name: "Cement", SKU: "CEM01", Quantity: 0, ReorderLevel: 10, LastSoldAt: &recent},
			}, nil
		},
	}

	cacheRepo := &fakeCacheRepo{
		AcknowledgedAlertsFn: func(_ context.Context, _ []string) (map[string]bool, error) {
			return nil, fmt.Errorf("redis down")
		},
	}

	uc := newTestUC(productRepo, nil, nil, cacheRepo, nil)

	alerts, err := uc.GetAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.False(t, alerts[0].Acknowledged)
}

func TestGetAlertsNoAlertsSkipsCache(t *testing.T) {
	recent := time.Now().Add(-time.Hour)
	productRepo := &fakeProductRepo{
		ListFn: func(_ context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Quantity: 100, ReorderLevel: 10, LastSoldAt: &recent},
			}, nil
		},
	}

	cacheCalled := false
	cacheRepo := &fakeCacheRepo{
		AcknowledgedAlertsFn: func(_ context.Context, _ []string) (map[string]bool, error) {
			cacheCalled = true
			return nil, nil
		},
	}

	uc := newTestUC(productRepo, nil, nil, cacheRepo, nil)

	alerts, err := uc.GetAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.False(t, cacheCalled)
}

func TestAcknowledgeAlert(t *testing.T) {
	var gotID string
	cacheRepo := &fakeCacheRepo{
		AcknowledgeAlertFn: func(_ context.Context, alertID string) error {
			gotID = alertID
			return nil
		},
	}

	uc := newTestUC(nil, nil, nil, cacheRepo, nil)

	require.NoError(t, uc.AcknowledgeAlert(context.Background(), "1-outofstock"))
	assert.Equal(t, "1-outofstock", gotID)
}
