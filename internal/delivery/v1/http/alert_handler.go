package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type AlertHandler struct {
	inventoryUsecase usecase.InventoryUC
	logger           logger.Logger
}

func NewAlertHandler(inventoryUsecase usecase.InventoryUC, logger logger.Logger) *AlertHandler {
	return &AlertHandler{inventoryUsecase: inventoryUsecase, logger: logger}
}

// getAlerts
//
//	@Summary		Алерты по складу
//	@Description	Пересчитывает алерты по текущему состоянию склада: критические раньше предупреждений.
//	@Tags			alerts
//	@Produce		json
//	@Success		200	{array}	AlertResponse
//	@Router			/alerts [get]
func (a *AlertHandler) getAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := a.inventoryUsecase.GetAlerts(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]AlertResponse, 0, len(alerts))
	for i := range alerts {
		result = append(result, *toAlertResponse(&alerts[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// acknowledgeAlert
//
//	@Summary		Подтверждение алерта
//	@Description	Помечает алерт просмотренным. Флаг истекает по TTL, пока условие сохраняется.
//	@Tags			alerts
//	@Produce		json
//	@Param			id	path		string	true	"ID алерта"
//	@Success		200	{object}	map[string]interface{}
//	@Router			/alerts/{id}/acknowledge [put]
func (a *AlertHandler) acknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, "id")

	if err := a.inventoryUsecase.AcknowledgeAlert(r.Context(), alertID); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Acknowledged": true,
	})
}
