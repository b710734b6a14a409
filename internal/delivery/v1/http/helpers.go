package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrProductSKURequired):
		return http.StatusBadRequest, e.ErrProductSKURequired.Error()
	case errors.Is(err, e.ErrQuantityNegative):
		return http.StatusBadRequest, e.ErrQuantityNegative.Error()
	case errors.Is(err, e.ErrQuantityNotPositive):
		return http.StatusBadRequest, e.ErrQuantityNotPositive.Error()
	case errors.Is(err, e.ErrReorderLevelNegative):
		return http.StatusBadRequest, e.ErrReorderLevelNegative.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrUnknownStockCategory):
		return http.StatusBadRequest, e.ErrUnknownStockCategory.Error()
	case errors.Is(err, e.ErrSKUExists):
		return http.StatusBadRequest, e.ErrSKUExists.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusConflict, e.ErrInsufficientStock.Error()
	case errors.Is(err, e.ErrInsightUnavailable):
		return http.StatusBadGateway, e.ErrInsightUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToPaise разбирает строку вида "599.99" или "600" в пайсы.
// Отклоняет нечисловые значения, отрицательные, больше двух знаков после
// запятой и цены выше миллиарда рупий.
func parsePriceToPaise(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	paise := d.Mul(decimal.NewFromInt(100)).Round(0)

	return paise.IntPart(), nil
}

// formatPaise переводит цену в пайсах в строку рупий с двумя знаками.
func formatPaise(v int64) string {
	return decimal.NewFromInt(v).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// RESPONSE DTOs

type ProductResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	SKU          string     `json:"sku"`
	Quantity     int64      `json:"quantity"`
	Price        string     `json:"price"`
	ReorderLevel int64      `json:"reorderLevel"`
	StockValue   string     `json:"stockValue"`
	LastSoldAt   *time.Time `json:"lastSoldAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

func toProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		Price:        formatPaise(p.Price),
		ReorderLevel: p.ReorderLevel,
		StockValue:   formatPaise(p.StockValue()),
		LastSoldAt:   p.LastSoldAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *toProductResponse(&products[i]))
	}

	return result
}

type SaleResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int64     `json:"quantity"`
	Price     string    `json:"price"`
	SaleDate  time.Time `json:"saleDate"`
}

func toSaleResponse(s *domain.Sale) *SaleResponse {
	return &SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Price:     formatPaise(s.Price),
		SaleDate:  s.SaleDate,
	}
}

type SaleRecordResponse struct {
	SaleResponse
	ProductName string `json:"productName"`
	ProductSKU  string `json:"productSku"`
}

func toSaleRecordResponse(record *usecase.SaleRecord) *SaleRecordResponse {
	return &SaleRecordResponse{
		SaleResponse: *toSaleResponse(&record.Sale),
		ProductName:  record.ProductName,
		ProductSKU:   record.ProductSKU,
	}
}

type StatsResponse struct {
	TotalProducts  int64  `json:"totalProducts"`
	LowStockCount  int64  `json:"lowStockCount"`
	DeadStockCount int64  `json:"deadStockCount"`
	TotalValue     string `json:"totalValue"`
}

type AlertResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	ProductID    int64     `json:"productId"`
	Timestamp    time.Time `json:"timestamp"`
	Acknowledged bool      `json:"acknowledged"`
}

func toAlertResponse(a *domain.Alert) *AlertResponse {
	return &AlertResponse{
		ID:           a.ID,
		Type:         string(a.Type),
		Title:        a.Title,
		Message:      a.Message,
		ProductID:    a.ProductID,
		Timestamp:    a.Timestamp,
		Acknowledged: a.Acknowledged,
	}
}

type TopProductResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Quantity  int64  `json:"quantity"`
	Revenue   string `json:"revenue"`
}

type SalesSummaryResponse struct {
	TotalSales        int64                `json:"totalSales"`
	TotalRevenue      string               `json:"totalRevenue"`
	TotalUnits        int64                `json:"totalUnits"`
	AverageOrderValue string               `json:"averageOrderValue"`
	TopProducts       []TopProductResponse `json:"topProducts"`
	Period            string               `json:"period"`
}

func toSalesSummaryResponse(res *usecase.SalesSummaryRes) *SalesSummaryResponse {
	top := make([]TopProductResponse, 0, len(res.TopProducts))
	for _, tp := range res.TopProducts {
		top = append(top, TopProductResponse{
			ProductID: tp.ProductID,
			Name:      tp.Name,
			SKU:       tp.SKU,
			Quantity:  tp.Quantity,
			Revenue:   formatPaise(tp.Revenue),
		})
	}

	return &SalesSummaryResponse{
		TotalSales:        res.TotalSales,
		TotalRevenue:      formatPaise(res.TotalRevenue),
		TotalUnits:        res.TotalUnits,
		AverageOrderValue: formatPaise(res.AverageOrderValue),
		TopProducts:       top,
		Period:            res.Period,
	}
}

type InsightMetricsResponse struct {
	TotalProducts   int64  `json:"totalProducts"`
	OutOfStockCount int64  `json:"outOfStockCount"`
	LowStockCount   int64  `json:"lowStockCount"`
	DeadStockCount  int64  `json:"deadStockCount"`
	TotalValue      string `json:"totalValue"`
	DeadStockValue  string `json:"deadStockValue"`
}

type InsightResponse struct {
	Insights    string                 `json:"insights"`
	Metrics     InsightMetricsResponse `json:"metrics"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Cached      bool                   `json:"cached"`
}

func toInsightMetricsResponse(m usecase.InsightMetrics) InsightMetricsResponse {
	return InsightMetricsResponse{
		TotalProducts:   m.TotalProducts,
		OutOfStockCount: m.OutOfStockCount,
		LowStockCount:   m.LowStockCount,
		DeadStockCount:  m.DeadStockCount,
		TotalValue:      formatPaise(m.TotalValue),
		DeadStockValue:  formatPaise(m.DeadStockValue),
	}
}

func toInsightResponse(res *usecase.InsightRes) *InsightResponse {
	return &InsightResponse{
		Insights:    res.Insights,
		Metrics:     toInsightMetricsResponse(res.Metrics),
		GeneratedAt: res.GeneratedAt,
		Cached:      res.Cached,
	}
}
