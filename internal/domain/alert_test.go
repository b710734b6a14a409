package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAlertsOutOfStockSuppressesLowStock(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Hour)

	products := []Product{
		{ID: 1, Name: "Cement", SKU: "CEM01", Quantity: 0, ReorderLevel: 10, LastSoldAt: &recent},
	}

	alerts := BuildAlerts(products, now, DefaultDeadStockWindow)
	require.Len(t, alerts, 1)
	assert.Equal(t, "1-outofstock", alerts[0].ID)
	assert.Equal(t, AlertCritical, alerts[0].Type)
	assert.Equal(t, "Cement (CEM01) is completely out of stock! Immediate reorder required.", alerts[0].Message)
}

func TestBuildAlertsDeadStockIndependent(t *testing.T) {
	now := time.Now()
	stale := now.Add(-60 * 24 * time.Hour)

	products := []Product{
		{ID: 2, Name: "Paint", SKU: "PNT01", Quantity: 4, ReorderLevel: 10, LastSoldAt: &stale},
	}

	alerts := BuildAlerts(products, now, DefaultDeadStockWindow)
	require.Len(t, alerts, 2)

	ids := []string{alerts[0].ID, alerts[1].ID}
	assert.Contains(t, ids, "2-lowstock")
	assert.Contains(t, ids, "2-deadstock")
}

func TestBuildAlertsCriticalFirst(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Hour)

	products := []Product{
		{ID: 1, Name: "Paint", SKU: "PNT01", Quantity: 4, ReorderLevel: 10, LastSoldAt: &recent},
		{ID: 2, Name: "Cement", SKU: "CEM01", Quantity: 0, ReorderLevel: 10, LastSoldAt: &recent},
		{ID: 3, Name: "Bricks", SKU: "BRK01", Quantity: 2, ReorderLevel: 10, LastSoldAt: &recent},
	}

	alerts := BuildAlerts(products, now, DefaultDeadStockWindow)
	require.Len(t, alerts, 3)

	assert.Equal(t, AlertCritical, alerts[0].Type)
	// Стабильность: предупреждения сохраняют порядок позиций
	assert.Equal(t, "1-lowstock", alerts[1].ID)
	assert.Equal(t, "3-lowstock", alerts[2].ID)
}

func TestBuildAlertsNeverSoldMessage(t *testing.T) {
	now := time.Now()

	products := []Product{
		{ID: 7, Name: "Tiles", SKU: "TIL01", Quantity: 30, ReorderLevel: 10},
	}

	alerts := BuildAlerts(products, now, DefaultDeadStockWindow)
	require.Len(t, alerts, 1)
	assert.Equal(t, "7-deadstock", alerts[0].ID)
	assert.Equal(t, "Tiles (TIL01) has never sold. Consider discount or discontinuation.", alerts[0].Message)
}

func TestBuildAlertsStaleSaleMessageDays(t *testing.T) {
	now := time.Now()
	stale := now.Add(-45 * 24 * time.Hour)

	products := []Product{
		{ID: 8, Name: "Pipes", SKU: "PIP01", Quantity: 30, ReorderLevel: 10, LastSoldAt: &stale},
	}

	alerts := BuildAlerts(products, now, DefaultDeadStockWindow)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Pipes (PIP01) hasn't sold in 45 days. Consider discount or discontinuation.", alerts[0].Message)
}

func TestBuildAlertsEmpty(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Hour)

	products := []Product{
		{ID: 1, Name: "Cement", SKU: "CEM01", Quantity: 100, ReorderLevel: 10, LastSoldAt: &recent},
	}

	alerts := BuildAlerts(products, now, DefaultDeadStockWindow)
	assert.Empty(t, alerts)
}
