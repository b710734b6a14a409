package pgdb

import (
	"context"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SaleRepo реализует append-only журнал продаж поверх PostgreSQL.
// Обновление и удаление продаж не предусмотрено.
type SaleRepo struct {
	pool *pgxpool.Pool
	conv converter.SaleConverter
}

func NewSaleRepo(pool *pgxpool.Pool, conv converter.SaleConverter) *SaleRepo {
	return &SaleRepo{
		pool: pool,
		conv: conv,
	}
}

// Create дописывает продажу в журнал. Выполняется в транзакции продажи.
func (s *SaleRepo) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO sales (product_id, quantity, price)
		VALUES ($1, $2, $3)
		RETURNING id, product_id, quantity, price, sale_date;
	`

	var model converter.SaleModel
	err = tx.QueryRow(ctx, query, sale.ProductID, sale.Quantity, sale.Price).Scan(
		&model.ID, &model.ProductID, &model.Quantity, &model.Price, &model.SaleDate,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

// ListSince возвращает продажи с saleDate >= since, новые первыми, вместе с
// текущими именем и SKU продукта. LEFT JOIN: продажи удалённых продуктов
// остаются в выборке с пустыми name/sku.
func (s *SaleRepo) ListSince(ctx context.Context, since time.Time, limit int) ([]usecase.SaleRecord, error) {
	query := `
		SELECT s.id, s.product_id, s.quantity, s.price, s.sale_date,
			COALESCE(p.name, ''), COALESCE(p.sku, '')
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.sale_date >= $1
		ORDER BY s.sale_date DESC
	`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.pool.Query(ctx, query+" LIMIT $2;", since, limit)
	} else {
		rows, err = s.pool.Query(ctx, query+";", since)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	records := make([]usecase.SaleRecord, 0)
	for rows.Next() {
		var (
			model  converter.SaleModel
			record usecase.SaleRecord
		)
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.Quantity, &model.Price, &model.SaleDate,
			&record.ProductName, &record.ProductSKU,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		record.Sale = *s.conv.ToEntity(&model)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return records, nil
}
