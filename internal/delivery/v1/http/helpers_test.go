package http

import (
	"net/http"
	"testing"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToPaise(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"599.99", 59999},
		{"600", 60000},
		{"0", 0},
		{"0.01", 1},
		{"350.5", 35050},
		{"1000000000", 100_000_000_000}, // потолок: миллиард рупий
	}

	for _, tc := range tests {
		got, err := parsePriceToPaise(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParsePriceToPaiseErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "-5", "12.345", "1000000000.01"} {
		_, err := parsePriceToPaise(in)
		assert.Error(t, err, in)
	}

	_, err := parsePriceToPaise("12.345")
	assert.ErrorIs(t, err, e.ErrPricePrecision)

	_, err = parsePriceToPaise("1000000001")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestFormatPaise(t *testing.T) {
	assert.Equal(t, "599.99", formatPaise(59999))
	assert.Equal(t, "600.00", formatPaise(60000))
	assert.Equal(t, "0.00", formatPaise(0))
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.ErrSKUExists, http.StatusBadRequest},
		{e.ErrProductNameRequired, http.StatusBadRequest},
		{e.ErrUnknownStockCategory, http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrInsufficientStock, http.StatusConflict},
		{e.ErrInsightUnavailable, http.StatusBadGateway},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		code, _ := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, tc.err)
	}

	// Обёрнутые ошибки маппятся так же
	code, _ := ToHTTPResponse(e.Wrap("InventoryUseCase.RecordSale", e.ErrInsufficientStock))
	assert.Equal(t, http.StatusConflict, code)
}
