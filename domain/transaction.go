package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a recorded sale. Product is a copy taken when the sale was recorded.
type Sale struct {
	ID         string          `json:"id"`
	Product    Product         `json:"product"`
	Quantity   int             `json:"quantity"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Total is the sale price applied to every unit sold.
func (s Sale) Total() decimal.Decimal {
	return s.SalePrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// Purchase is a recorded stock purchase. Product is a copy taken when the purchase was recorded.
type Purchase struct {
	ID            string          `json:"id"`
	Product       Product         `json:"product"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

func (p Purchase) Total() decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
