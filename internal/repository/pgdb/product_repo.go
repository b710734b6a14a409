package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = "id, name, sku, quantity, price, reorder_level, last_sold_at, created_at, updated_at"

// ProductRepo реализует репозиторий складских позиций поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create добавляет позицию. Уникальность SKU обеспечивает индекс,
// нарушение транслируется в e.ErrSKUExists.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, sku, quantity, price, reorder_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query,
		product.Name, product.SKU, product.Quantity, product.Price, product.ReorderLevel,
	).Scan(
		&model.ID, &model.Name, &model.SKU, &model.Quantity, &model.Price,
		&model.ReorderLevel, &model.LastSoldAt, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSKUExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// List возвращает все позиции, новые первыми.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC;`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := scanProducts(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.SKU, &model.Quantity, &model.Price,
		&model.ReorderLevel, &model.LastSoldAt, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// UpdateQuantity устанавливает абсолютный остаток позиции.
func (p *ProductRepo) UpdateQuantity(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	query := `
		UPDATE products
		SET quantity = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id, quantity).Scan(
		&model.ID, &model.Name, &model.SKU, &model.Quantity, &model.Price,
		&model.ReorderLevel, &model.LastSoldAt, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// DecrementStock атомарно списывает остаток: условие quantity >= $2 входит в
// сам UPDATE, поэтому параллельные продажи не могут увести остаток в минус.
// Выполняется в транзакции продажи.
func (p *ProductRepo) DecrementStock(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET quantity = quantity - $2, last_sold_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND quantity >= $2
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query, id, quantity).Scan(
		&model.ID, &model.Name, &model.SKU, &model.Quantity, &model.Price,
		&model.ReorderLevel, &model.LastSoldAt, &model.CreatedAt, &model.UpdatedAt,
	)
	if err == nil {
		return p.conv.ToEntity(&model), nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// Условие не сработало: различаем отсутствие позиции и нехватку остатка
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1);`, id).Scan(&exists); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if !exists {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil, e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
}

// Delete удаляет позицию. Исторические продажи остаются в журнале.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func scanProducts(rows pgx.Rows) ([]converter.ProductModel, error) {
	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.SKU, &model.Quantity, &model.Price,
			&model.ReorderLevel, &model.LastSoldAt, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, err
		}

		models = append(models, model)
	}

	return models, rows.Err()
}

// postgresDuplicate распознаёт нарушение уникального ограничения (23505).
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
