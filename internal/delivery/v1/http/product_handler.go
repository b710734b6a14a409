package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	inventoryUsecase usecase.InventoryUC
	logger           logger.Logger
}

func NewProductHandler(inventoryUsecase usecase.InventoryUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{inventoryUsecase: inventoryUsecase, logger: logger}
}

type addProductRequest struct {
	Name         string      `json:"name"`
	SKU          string      `json:"sku"`
	Quantity     int64       `json:"quantity"`
	Price        json.Number `json:"price"`
	ReorderLevel *int64      `json:"reorderLevel"`
}

// addProduct
//
//	@Summary		Добавление складской позиции
//	@Description	Создает позицию с уникальным SKU. SKU нормализуется к верхнему регистру.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addProductRequest	true	"Позиция"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации или дубликат SKU"
//	@Router			/products [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	price, err := parsePriceToPaise(req.Price.String())
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.inventoryUsecase.AddProduct(r.Context(), usecase.NewAddProductReq(req.Name, req.SKU, req.Quantity, price, req.ReorderLevel))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// listProducts
//
//	@Summary		Список складских позиций
//	@Description	Возвращает все позиции, новые первыми.
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	ProductResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.inventoryUsecase.ListProducts(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// listLowStock
//
//	@Summary		Дефицитные позиции
//	@Description	Позиции с остатком не выше порога дозаказа, отсортированные по остатку по возрастанию.
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	ProductResponse
//	@Router			/products/low-stock [get]
func (p *ProductHandler) listLowStock(w http.ResponseWriter, r *http.Request) {
	p.listCategory(w, r, string(domain.CategoryLowStock))
}

// listDeadStock
//
//	@Summary		Мертвые остатки
//	@Description	Позиции без продаж дольше окна, давно непроданные первыми.
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	ProductResponse
//	@Router			/products/dead-stock [get]
func (p *ProductHandler) listDeadStock(w http.ResponseWriter, r *http.Request) {
	p.listCategory(w, r, string(domain.CategoryDeadStock))
}

// listByCategory
//
//	@Summary		Позиции по категории остатка
//	@Tags			products
//	@Produce		json
//	@Param			category	path		string	true	"Категория остатка"	Enums(in-stock, low-stock, dead-stock, out-of-stock)
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Неизвестная категория"
//	@Router			/products/category/{category} [get]
func (p *ProductHandler) listByCategory(w http.ResponseWriter, r *http.Request) {
	p.listCategory(w, r, chi.URLParam(r, "category"))
}

func (p *ProductHandler) listCategory(w http.ResponseWriter, r *http.Request, category string) {
	products, err := p.inventoryUsecase.ListByCategory(r.Context(), category)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// searchProducts
//
//	@Summary		Поиск позиций
//	@Description	Независимые ступени: подстрока имени или SKU, фильтр по категории остатка, сортировка.
//	@Tags			products
//	@Produce		json
//	@Param			q		query		string	false	"Подстрока имени или SKU"
//	@Param			status	query		string	false	"Категория остатка"	Enums(in-stock, low-stock, dead-stock, out-of-stock)
//	@Param			sort_by	query		string	false	"Сортировка"		Enums(quantity-asc, quantity-desc, value-desc, name)
//	@Success		200		{array}		ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Неизвестная категория"
//	@Router			/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	req := usecase.NewSearchProductsReq(
		r.URL.Query().Get("q"),
		r.URL.Query().Get("status"),
		r.URL.Query().Get("sort_by"),
	)

	products, err := p.inventoryUsecase.SearchProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// getStats
//
//	@Summary		Сводка по складу
//	@Description	Количество позиций, дефицитных и мертвых остатков, суммарная стоимость склада.
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	StatsResponse
//	@Router			/products/stats [get]
func (p *ProductHandler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := p.inventoryUsecase.GetStats(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &StatsResponse{
		TotalProducts:  stats.TotalProducts,
		LowStockCount:  stats.LowStockCount,
		DeadStockCount: stats.DeadStockCount,
		TotalValue:     formatPaise(stats.TotalValue),
	})
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// updateQuantity
//
//	@Summary		Установка остатка
//	@Description	Устанавливает абсолютный остаток позиции. Отрицательные значения отклоняются.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID позиции"
//	@Param			request	body		updateQuantityRequest	true	"Новый остаток"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id}/quantity [put]
func (p *ProductHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	product, err := p.inventoryUsecase.UpdateQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary		Удаление позиции
//	@Description	Удаляет позицию. Журнал продаж не затрагивается.
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID позиции"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := p.inventoryUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Deleted": true,
	})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
