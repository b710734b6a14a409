package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type SaleHandler struct {
	inventoryUsecase usecase.InventoryUC
	logger           logger.Logger
}

func NewSaleHandler(inventoryUsecase usecase.InventoryUC, logger logger.Logger) *SaleHandler {
	return &SaleHandler{inventoryUsecase: inventoryUsecase, logger: logger}
}

type recordSaleRequest struct {
	ProductID int64        `json:"productId"`
	Quantity  int64        `json:"quantity"`
	Price     *json.Number `json:"price"`
}

type recordSaleResponse struct {
	Sale    *SaleResponse    `json:"sale"`
	Product *ProductResponse `json:"product"`
}

// recordSale
//
//	@Summary		Проведение продажи
//	@Description	Атомарно списывает остаток и дописывает продажу в журнал. Цена по умолчанию — текущая цена позиции.
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recordSaleRequest	true	"Продажа"
//	@Success		201		{object}	recordSaleResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Позиция не найдена"
//	@Failure		409		{object}	ErrorResponse	"Недостаточный остаток"
//	@Router			/sales [post]
func (s *SaleHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var price *int64
	if req.Price != nil {
		paise, err := parsePriceToPaise(req.Price.String())
		if err != nil {
			s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
		price = &paise
	}

	res, err := s.inventoryUsecase.RecordSale(r.Context(), usecase.NewRecordSaleReq(req.ProductID, req.Quantity, price))
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &recordSaleResponse{
		Sale:    toSaleResponse(res.Sale),
		Product: toProductResponse(res.Product),
	})
}

// salesHistory
//
//	@Summary		Журнал продаж
//	@Description	Продажи за период, новые первыми, с текущими именем и SKU позиции. Продажи удаленных позиций остаются с пустыми name/sku.
//	@Tags			sales
//	@Produce		json
//	@Param			days	query		int	false	"Глубина периода в днях"	default(30)
//	@Param			limit	query		int	false	"Максимум записей"
//	@Success		200		{array}		SaleRecordResponse
//	@Router			/sales/history [get]
func (s *SaleHandler) salesHistory(w http.ResponseWriter, r *http.Request) {
	days, err := parseIntQuery(r, "days", 0)
	if err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	records, err := s.inventoryUsecase.GetSalesHistory(r.Context(), days, limit)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]SaleRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, *toSaleRecordResponse(&records[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// salesSummary
//
//	@Summary		Сводка продаж
//	@Description	Выручка, число продаж и единиц, средний чек и топ позиций по выручке за период.
//	@Tags			sales
//	@Produce		json
//	@Param			days	query		int	false	"Глубина периода в днях"	default(30)
//	@Success		200		{object}	SalesSummaryResponse
//	@Router			/sales/summary [get]
func (s *SaleHandler) salesSummary(w http.ResponseWriter, r *http.Request) {
	days, err := parseIntQuery(r, "days", 0)
	if err != nil {
		s.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	summary, err := s.inventoryUsecase.GetSalesSummary(r.Context(), days)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSalesSummaryResponse(summary))
}

func parseIntQuery(r *http.Request, name string, defaultValue int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return defaultValue, nil
	}

	return strconv.Atoi(v)
}
