package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/cfg"
	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

// InventoryUseCase реализует бизнес-логику склада: учёт позиций, продажи,
// классификацию остатков, алерты и аналитику.
type InventoryUseCase struct {
	productRepo ProductRepository
	saleRepo    SaleRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	transactor  Transactor
	insight     InsightInfra
	logger      logger.Logger
	cfg         *cfg.InventoryCfg

	now func() time.Time
}

func NewInventoryUC(
	productRepo ProductRepository,
	saleRepo SaleRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	transactor Transactor,
	insight InsightInfra,
	logger logger.Logger,
	cfg *cfg.InventoryCfg,
) *InventoryUseCase {
	return &InventoryUseCase{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		transactor:  transactor,
		insight:     insight,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
}

// AddProduct создаёт позицию с нормализованным SKU.
// Дубликат SKU отклоняется хранилищем.
func (u *InventoryUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "InventoryUseCase.AddProduct"

	if err := u.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	reorderLevel := int64(domain.DefaultReorderLevel)
	if req.ReorderLevel != nil {
		reorderLevel = *req.ReorderLevel
	}

	product, err := u.productRepo.Create(ctx, domain.NewProduct(req.Name, req.SKU, req.Quantity, req.Price, reorderLevel))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// ListProducts возвращает все позиции, новые первыми.
func (u *InventoryUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "InventoryUseCase.ListProducts"

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// ListByCategory возвращает позиции заданной категории остатка.
// Low-stock сортируется по остатку по возрастанию, dead-stock — по давности
// последней продажи (никогда не продававшиеся первыми).
func (u *InventoryUseCase) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const op = "InventoryUseCase.ListByCategory"

	cat, err := domain.ParseStockCategory(category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := u.now()
	result := make([]domain.Product, 0)
	for _, p := range products {
		if p.InCategory(cat, now, u.cfg.DeadStockWindow) {
			result = append(result, p)
		}
	}

	switch cat {
	case domain.CategoryLowStock:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Quantity < result[j].Quantity
		})
	case domain.CategoryDeadStock:
		sort.SliceStable(result, func(i, j int) bool {
			return lastSoldBefore(&result[i], &result[j])
		})
	}

	return result, nil
}

// SearchProducts применяет независимые ступени: фильтр по подстроке,
// фильтр по категории, сортировку.
func (u *InventoryUseCase) SearchProducts(ctx context.Context, req *SearchProductsReq) ([]domain.Product, error) {
	const op = "InventoryUseCase.SearchProducts"

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Query != "" {
		query := strings.ToLower(req.Query)
		filtered := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), query) || strings.Contains(strings.ToLower(p.SKU), query) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if req.Status != "" {
		cat, err := domain.ParseStockCategory(req.Status)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		now := u.now()
		filtered := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if p.InCategory(cat, now, u.cfg.DeadStockWindow) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sortProducts(products, req.SortBy)

	return products, nil
}

// UpdateQuantity устанавливает абсолютный остаток позиции.
func (u *InventoryUseCase) UpdateQuantity(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	const op = "InventoryUseCase.UpdateQuantity"

	if quantity < 0 {
		return nil, e.Wrap(op, e.ErrQuantityNegative)
	}

	product, err := u.productRepo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// DeleteProduct удаляет позицию. Журнал продаж записи не теряет:
// исторические продажи сохраняют невладеющую ссылку на удалённый продукт.
func (u *InventoryUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "InventoryUseCase.DeleteProduct"

	if err := u.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (u *InventoryUseCase) validateProduct(req *AddProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.SKU) == "" {
		return e.ErrProductSKURequired
	}

	if req.Quantity < 0 {
		return e.ErrQuantityNegative
	}

	if req.Price < 0 {
		return e.ErrInvalidPrice
	}

	if req.ReorderLevel != nil && *req.ReorderLevel < 0 {
		return e.ErrReorderLevelNegative
	}

	return nil
}

func sortProducts(products []domain.Product, sortBy string) {
	switch sortBy {
	case "quantity-asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Quantity < products[j].Quantity
		})
	case "quantity-desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Quantity > products[j].Quantity
		})
	case "value-desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].StockValue() > products[j].StockValue()
		})
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}

// lastSoldBefore упорядочивает по давности продажи, nil (никогда) первым.
func lastSoldBefore(a, b *domain.Product) bool {
	if a.LastSoldAt == nil {
		return b.LastSoldAt != nil
	}
	if b.LastSoldAt == nil {
		return false
	}
	return a.LastSoldAt.Before(*b.LastSoldAt)
}
