package pgdb

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// Transactor выполняет функцию в одной транзакции PostgreSQL, пробрасывая
// pgx.Tx репозиториям через контекст (см. pkg/tr).
type Transactor struct {
	dbPool transaction.Transactional
}

func NewTransactor(dbPool transaction.Transactional) *Transactor {
	return &Transactor{dbPool: dbPool}
}

// WithinTransaction открывает транзакцию, выполняет fn и коммитит.
// При ошибке fn или коммита транзакция откатывается.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.dbPool)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err := fn(ctx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
