package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventoryUC struct {
	usecase.InventoryUC
	GenerateInsightsFn func(ctx context.Context) (*usecase.InsightRes, error)
}

func (f *fakeInventoryUC) GenerateInsights(ctx context.Context) (*usecase.InsightRes, error) {
	return f.GenerateInsightsFn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func insightMetrics() usecase.InsightMetrics {
	return usecase.InsightMetrics{
		TotalProducts:   3,
		OutOfStockCount: 1,
		LowStockCount:   1,
		DeadStockCount:  1,
		TotalValue:      201000,
		DeadStockValue:  200000,
	}
}

func TestGenerateInsightsHandler(t *testing.T) {
	uc := &fakeInventoryUC{
		GenerateInsightsFn: func(_ context.Context) (*usecase.InsightRes, error) {
			return &usecase.InsightRes{
				Insights:    "HEALTH SCORE: 6/10",
				Metrics:     insightMetrics(),
				GeneratedAt: time.Now(),
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/insights", nil)
	NewInsightHandler(uc, nopLogger{}).generateInsights(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body InsightResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "HEALTH SCORE: 6/10", body.Insights)
	assert.Equal(t, "2010.00", body.Metrics.TotalValue)
}

func TestGenerateInsightsHandlerUpstreamDown(t *testing.T) {
	uc := &fakeInventoryUC{
		GenerateInsightsFn: func(_ context.Context) (*usecase.InsightRes, error) {
			res := &usecase.InsightRes{Metrics: insightMetrics(), GeneratedAt: time.Now()}
			return res, e.Wrap("InventoryUseCase.GenerateInsights", e.ErrInsightUnavailable)
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/insights", nil)
	NewInsightHandler(uc, nopLogger{}).generateInsights(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	// Тело 502 несёт и ошибку, и посчитанные метрики
	var body insightUnavailableResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusBadGateway, body.Code)
	assert.Equal(t, e.ErrInsightUnavailable.Error(), body.Message)
	assert.Equal(t, int64(3), body.Metrics.TotalProducts)
	assert.Equal(t, "2010.00", body.Metrics.TotalValue)
	assert.Equal(t, "2000.00", body.Metrics.DeadStockValue)
}
