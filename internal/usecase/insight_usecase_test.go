package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightProducts() []domain.Product {
	recent := time.Now().Add(-time.Hour)
	stale := time.Now().Add(-60 * 24 * time.Hour)
	return []domain.Product{
		{ID: 1, Quantity: 0, ReorderLevel: 10, Price: 100, LastSoldAt: &recent},   // out of stock
		{ID: 2, Quantity: 5, ReorderLevel: 10, Price: 200, LastSoldAt: &recent},   // low
		{ID: 3, Quantity: 20, ReorderLevel: 10, Price: 10000, LastSoldAt: &stale}, // dead
	}
}

func TestGenerateInsightsCacheMiss(t *testing.T) {
	productRepo := &fakeProductRepo{
		ListFn: func(_ context.Context) ([]domain.Product, error) {
			return insightProducts(), nil
		},
	}

	var setKey, setText string
	cacheRepo := &fakeCacheRepo{
		GetInsightFn: func(_ context.Context, _ string) (string, error) {
			return "", nil
		},
		SetInsightFn: func(_ context.Context, key, text string) error {
			setKey, setText = key, text
			return nil
		},
	}

	var gotPrompt string
	insight := &fakeInsight{
		GenerateFn: func(_ context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "HEALTH SCORE: 6/10", nil
		},
	}

	uc := newTestUC(productRepo, nil, nil, cacheRepo, insight)

	res, err := uc.GenerateInsights(context.Background())
	require.NoError(t, err)

	assert.False(t, res.Cached)
	assert.Equal(t, "HEALTH SCORE: 6/10", res.Insights)
	assert.Equal(t, int64(3), res.Metrics.TotalProducts)
	assert.Equal(t, int64(1), res.Metrics.OutOfStockCount)
	assert.Equal(t, int64(1), res.Metrics.LowStockCount)
	assert.Equal(t, int64(1), res.Metrics.DeadStockCount)
	assert.Equal(t, int64(5*200+20*10000), res.Metrics.TotalValue)
	assert.Equal(t, int64(20*10000), res.Metrics.DeadStockValue)

	// Промпт содержит суммы в рупиях, не в пайсах
	assert.Contains(t, gotPrompt, "Total Value: ₹2010.00")
	assert.Contains(t, gotPrompt, "Dead Stock Value: ₹2000.00")

	assert.Equal(t, insightCacheKey(res.Metrics), setKey)
	assert.Equal(t, "HEALTH SCORE: 6/10", setText)
}

func TestGenerateInsightsCacheHitSkipsGenerator(t *testing.T) {
	productRepo := &fakeProductRepo{
		ListFn: func(_ context.Context) ([]domain.Product, error) {
			return insightProducts(), nil
		},
	}

	cacheRepo := &fakeCacheRepo{
		GetInsightFn: func(_ context.Context, _ string) (string, error) {
			return "cached analysis", nil
		},
	}

	insight := &fakeInsight{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			t.Fatal("generator must not be called on cache hit")
			return "", nil
		},
	}

	uc := newTestUC(productRepo, nil, nil, cacheRepo, insight)

	res, err := uc.GenerateInsights(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, "cached analysis", res.Insights)
}

func TestGenerateInsightsUpstreamFailure(t *testing.T) {
	productRepo := &fakeProductRepo{
		ListFn: func(_ context.Context) ([]domain.Product, error) {
			return insightProducts(), nil
		},
	}

	cacheRepo := &fakeCacheRepo{
		GetInsightFn: func(_ context.Context, _ string) (string, error) {
			return "", nil
		},
	}

	insight := &fakeInsight{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			return "", e.ErrInsightUnavailable
		},
	}

	uc := newTestUC(productRepo, nil, nil, cacheRepo, insight)

	res, err := uc.GenerateInsights(context.Background())
	require.ErrorIs(t, err, e.ErrInsightUnavailable)

	// Метрики посчитаны до похода к генератору и возвращаются несмотря на отказ
	require.NotNil(t, res)
	assert.Empty(t, res.Insights)
	assert.False(t, res.Cached)
	assert.Equal(t, int64(3), res.Metrics.TotalProducts)
	assert.Equal(t, int64(5*200+20*10000), res.Metrics.TotalValue)
	assert.Equal(t, int64(20*10000), res.Metrics.DeadStockValue)
}

func TestInsightCacheKeyDeterministic(t *testing.T) {
	m := InsightMetrics{TotalProducts: 3, OutOfStockCount: 1, LowStockCount: 1, DeadStockCount: 1, TotalValue: 201000, DeadStockValue: 200000}

	assert.Equal(t, insightCacheKey(m), insightCacheKey(m))
	assert.Equal(t, 6, strings.Count(insightCacheKey(m), ":")+1)

	changed := m
	changed.LowStockCount++
	assert.NotEqual(t, insightCacheKey(m), insightCacheKey(changed))
}
