package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrProductSKURequired   = fmt.Errorf("product sku is required")
	ErrQuantityNegative     = fmt.Errorf("quantity must not be negative")
	ErrQuantityNotPositive  = fmt.Errorf("quantity must be positive")
	ErrReorderLevelNegative = fmt.Errorf("reorder level must not be negative")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrUnknownStockCategory = fmt.Errorf("unknown stock category")
	ErrSKUExists            = fmt.Errorf("sku already exists")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrStatusBadRequest     = fmt.Errorf("bad request")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 409 Conflict
	ErrInsufficientStock = fmt.Errorf("insufficient stock")

	// 502 Bad Gateway
	ErrInsightUnavailable = fmt.Errorf("insight service unavailable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
