package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

// GetAlerts генерирует алерты по текущему состоянию склада и накладывает
// сохранённые флаги подтверждения. Недоступность кэша алерты не ломает.
func (u *InventoryUseCase) GetAlerts(ctx context.Context) ([]domain.Alert, error) {
	const op = "InventoryUseCase.GetAlerts"

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	alerts := domain.BuildAlerts(products, u.now(), u.cfg.DeadStockWindow)
	if len(alerts) == 0 {
		return alerts, nil
	}

	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}

	acked, err := u.cacheRepo.AcknowledgedAlerts(ctx, ids)
	if err != nil {
		u.logger.Warnf("Failed to load alert acknowledgments: %v", e.Wrap(op, err))
		return alerts, nil
	}

	for i := range alerts {
		alerts[i].Acknowledged = acked[alerts[i].ID]
	}

	return alerts, nil
}

// AcknowledgeAlert помечает алерт подтверждённым. Флаг живёт с TTL:
// алерты пересчитываются на каждый запрос, и подтверждение истекает
// вместе с породившим его состоянием.
func (u *InventoryUseCase) AcknowledgeAlert(ctx context.Context, alertID string) error {
	const op = "InventoryUseCase.AcknowledgeAlert"

	if err := u.cacheRepo.AcknowledgeAlert(ctx, alertID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
