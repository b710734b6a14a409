package usecase

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
)

// PRODUCTS

// AddProductReq — запрос на добавление складской позиции.
// ReorderLevel nil — взять значение по умолчанию.
type AddProductReq struct {
	Name         string
	SKU          string
	Quantity     int64
	Price        int64
	ReorderLevel *int64
}

// SearchProductsReq — композитный запрос поиска: подстрока, категория, сортировка.
// Пустое поле означает «не применять эту ступень».
type SearchProductsReq struct {
	Query  string
	Status string
	SortBy string
}

// StatsRes — сводка по складу. Считается заново на каждый запрос.
type StatsRes struct {
	TotalProducts  int64
	LowStockCount  int64
	DeadStockCount int64
	TotalValue     int64 // в пайсах
}

// SALES

// RecordSaleReq — запрос на проведение продажи.
// Price nil — зафиксировать текущую цену продукта.
type RecordSaleReq struct {
	ProductID int64
	Quantity  int64
	Price     *int64
}

// RecordSaleRes — результат продажи: запись журнала и продукт после списания.
type RecordSaleRes struct {
	Sale    *domain.Sale
	Product *domain.Product
}

// SaleRecord — продажа с разрешёнными на момент выборки именем и SKU продукта.
// Пустой SKU означает, что продукт был удалён после продажи.
type SaleRecord struct {
	Sale        domain.Sale
	ProductName string
	ProductSKU  string
}

type TopProduct struct {
	ProductID int64
	Name      string
	SKU       string
	Quantity  int64
	Revenue   int64 // в пайсах
}

type SalesSummaryRes struct {
	TotalSales        int64
	TotalRevenue      int64 // в пайсах
	TotalUnits        int64
	AverageOrderValue int64 // в пайсах, 0 при отсутствии продаж
	TopProducts       []TopProduct
	Period            string
}

// INSIGHTS

// InsightMetrics — числовая сводка, из которой собирается промпт для AI.
type InsightMetrics struct {
	TotalProducts   int64
	OutOfStockCount int64
	LowStockCount   int64
	DeadStockCount  int64
	TotalValue      int64 // в пайсах
	DeadStockValue  int64 // в пайсах
}

type InsightRes struct {
	Insights    string
	Metrics     InsightMetrics
	GeneratedAt time.Time
	Cached      bool
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const SaleRecorded OutboxEventType = "sale.recorded"

// OutboxEvent — событие для публикации в Kafka, записанное в одной
// транзакции с породившим его изменением.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// SaleRecordedEvent — JSON-представление события продажи в Kafka.
type SaleRecordedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	SaleID    int64     `json:"sale_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Price     int64     `json:"price"`
	SaleDate  time.Time `json:"sale_date"`
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// MAPPERS

func NewAddProductReq(name, sku string, quantity, price int64, reorderLevel *int64) *AddProductReq {
	return &AddProductReq{
		Name:         name,
		SKU:          sku,
		Quantity:     quantity,
		Price:        price,
		ReorderLevel: reorderLevel,
	}
}

func NewRecordSaleReq(productID, quantity int64, price *int64) *RecordSaleReq {
	return &RecordSaleReq{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
}

func NewRecordSaleRes(sale *domain.Sale, product *domain.Product) *RecordSaleRes {
	return &RecordSaleRes{
		Sale:    sale,
		Product: product,
	}
}

func NewSearchProductsReq(query, status, sortBy string) *SearchProductsReq {
	return &SearchProductsReq{
		Query:  query,
		Status: status,
		SortBy: sortBy,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}
