package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	SKU          string     `db:"sku"`
	Quantity     int64      `db:"quantity"`
	Price        int64      `db:"price"`
	ReorderLevel int64      `db:"reorder_level"`
	LastSoldAt   *time.Time `db:"last_sold_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// SaleModel представляет запись таблицы sales в PostgreSQL.
type SaleModel struct {
	ID        int64     `db:"id"`
	ProductID int64     `db:"product_id"`
	Quantity  int64     `db:"quantity"`
	Price     int64     `db:"price"`
	SaleDate  time.Time `db:"sale_date"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
