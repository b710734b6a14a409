package domain

import (
	"fmt"
	"sort"
	"time"
)

type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
)

// Alert — производное уведомление о состоянии позиции. Не хранится:
// пересчитывается на каждый запрос, поэтому Timestamp — момент генерации.
type Alert struct {
	ID           string // детерминированный: "<productID>-<подтип>"
	Type         AlertType
	Title        string
	Message      string
	ProductID    int64
	Timestamp    time.Time
	Acknowledged bool
}

// BuildAlerts генерирует алерты по всем позициям. Для одной позиции
// out-of-stock вытесняет low-stock, dead-stock добавляется независимо.
// Критические алерты идут раньше предупреждений, внутри типа порядок
// совпадает с порядком позиций.
func BuildAlerts(products []Product, now time.Time, deadStockWindow time.Duration) []Alert {
	alerts := make([]Alert, 0)

	for _, p := range products {
		if p.IsOutOfStock() {
			alerts = append(alerts, Alert{
				ID:        fmt.Sprintf("%d-outofstock", p.ID),
				Type:      AlertCritical,
				Title:     "Out of Stock",
				Message:   fmt.Sprintf("%s (%s) is completely out of stock! Immediate reorder required.", p.Name, p.SKU),
				ProductID: p.ID,
				Timestamp: now,
			})
		} else if p.IsLowStock() {
			alerts = append(alerts, Alert{
				ID:        fmt.Sprintf("%d-lowstock", p.ID),
				Type:      AlertWarning,
				Title:     "Low Stock Alert",
				Message:   fmt.Sprintf("%s (%s) is running low: only %d units remaining (reorder at %d)", p.Name, p.SKU, p.Quantity, p.ReorderLevel),
				ProductID: p.ID,
				Timestamp: now,
			})
		}

		if p.IsDeadStock(now, deadStockWindow) {
			alerts = append(alerts, Alert{
				ID:        fmt.Sprintf("%d-deadstock", p.ID),
				Type:      AlertWarning,
				Title:     "Dead Stock Detected",
				Message:   deadStockMessage(&p, now),
				ProductID: p.ID,
				Timestamp: now,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Type == AlertCritical && alerts[j].Type != AlertCritical
	})

	return alerts
}

func deadStockMessage(p *Product, now time.Time) string {
	if p.LastSoldAt == nil {
		return fmt.Sprintf("%s (%s) has never sold. Consider discount or discontinuation.", p.Name, p.SKU)
	}

	daysOld := int64(now.Sub(*p.LastSoldAt).Hours() / 24)
	return fmt.Sprintf("%s (%s) hasn't sold in %d days. Consider discount or discontinuation.", p.Name, p.SKU, daysOld)
}
