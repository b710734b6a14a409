package domain

import "time"

// Sale — запись о продаже в журнале. Журнал append-only:
// продажи не обновляются и не удаляются, ссылка на продукт невладеющая.
type Sale struct {
	ID        int64
	ProductID int64
	Quantity  int64
	Price     int64 // цена за единицу на момент продажи, в пайсах
	SaleDate  time.Time
}

func NewSale(productID, quantity, price int64) *Sale {
	return &Sale{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
}

// Revenue возвращает выручку продажи в пайсах.
func (s *Sale) Revenue() int64 {
	return s.Quantity * s.Price
}
