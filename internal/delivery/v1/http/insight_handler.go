package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type InsightHandler struct {
	inventoryUsecase usecase.InventoryUC
	logger           logger.Logger
}

func NewInsightHandler(inventoryUsecase usecase.InventoryUC, logger logger.Logger) *InsightHandler {
	return &InsightHandler{inventoryUsecase: inventoryUsecase, logger: logger}
}

type insightUnavailableResponse struct {
	ErrorResponse
	Metrics InsightMetricsResponse `json:"metrics"`
}

// generateInsights
//
//	@Summary		AI-рекомендации по складу
//	@Description	Собирает метрики склада и генерирует текст рекомендаций через Gemini. Ответ кэшируется, пока метрики не изменились. Если генератор недоступен, метрики возвращаются в теле 502.
//	@Tags			insights
//	@Produce		json
//	@Success		200	{object}	InsightResponse
//	@Failure		502	{object}	insightUnavailableResponse	"AI-сервис недоступен, метрики в теле"
//	@Router			/ai/insights [post]
func (i *InsightHandler) generateInsights(w http.ResponseWriter, r *http.Request) {
	res, err := i.inventoryUsecase.GenerateInsights(r.Context())
	if err != nil {
		i.logger.Warnf("%s", err.Error())

		// Метрики считаются локально и переживают отказ генератора.
		if res != nil {
			code, msg := ToHTTPResponse(err)
			WriteSuccess(w, code, &insightUnavailableResponse{
				ErrorResponse: *NewErrorResponse(code, msg),
				Metrics:       toInsightMetricsResponse(res.Metrics),
			})
			return
		}

		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toInsightResponse(res))
}
