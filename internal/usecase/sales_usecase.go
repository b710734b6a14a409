package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/google/uuid"
)

const defaultSalesWindowDays = 30

// RecordSale проводит продажу: атомарно списывает остаток, дописывает журнал
// и кладёт событие в outbox — всё в одной транзакции. Конкурирующие продажи
// одной позиции не могут увести остаток в минус: списание условное на уровне
// хранилища, а не проверка-перед-записью.
func (u *InventoryUseCase) RecordSale(ctx context.Context, req *RecordSaleReq) (*RecordSaleRes, error) {
	const op = "InventoryUseCase.RecordSale"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrQuantityNotPositive)
	}

	if req.Price != nil && *req.Price < 0 {
		return nil, e.Wrap(op, e.ErrInvalidPrice)
	}

	var res *RecordSaleRes
	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		product, err := u.productRepo.DecrementStock(ctx, req.ProductID, req.Quantity)
		if err != nil {
			return err
		}

		// Снимок цены: либо цена из запроса, либо текущая цена продукта
		price := product.Price
		if req.Price != nil {
			price = *req.Price
		}

		sale, err := u.saleRepo.Create(ctx, domain.NewSale(product.ID, req.Quantity, price))
		if err != nil {
			return err
		}

		payload, err := json.Marshal(SaleRecordedEvent{
			EventID:   uuid.NewString(),
			EventType: string(SaleRecorded),
			SaleID:    sale.ID,
			ProductID: product.ID,
			Quantity:  sale.Quantity,
			Price:     sale.Price,
			SaleDate:  sale.SaleDate,
		})
		if err != nil {
			return err
		}

		if _, err := u.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), SaleRecorded, product.ID, payload)); err != nil {
			return err
		}

		res = NewRecordSaleRes(sale, product)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// GetSalesHistory возвращает продажи за окно days, новые первыми.
// Лимит ограничивается настройкой SalesHistoryLimit.
func (u *InventoryUseCase) GetSalesHistory(ctx context.Context, days, limit int) ([]SaleRecord, error) {
	const op = "InventoryUseCase.GetSalesHistory"

	if days <= 0 {
		days = defaultSalesWindowDays
	}

	if limit <= 0 || limit > u.cfg.SalesHistoryLimit {
		limit = u.cfg.SalesHistoryLimit
	}

	since := u.now().Add(-time.Duration(days) * 24 * time.Hour)
	records, err := u.saleRepo.ListSince(ctx, since, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return records, nil
}
