// Package report renders catalog and ledger snapshots as plain text, one line
// per record, in the order given. Money is always shown with two decimals.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"inventory_manager/domain"
)

// Inventory renders one line per product:
//
//	Widget	desc - [$19.99	7] in Stock
func Inventory(products []domain.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "%s\t%s - [$%s\t%d] in Stock\n",
			p.Name, p.Description, p.Price.StringFixed(2), p.Quantity)
	}
	return b.String()
}

// Sales renders one line per sale:
//
//	Sold 3 * Widget for $25.00 each [Total - $75.00]
func Sales(sales []domain.Sale) string {
	var b strings.Builder
	for _, s := range sales {
		line(&b, "Sold", s.Quantity, s.Product.Name, s.SalePrice, s.Total())
	}
	return b.String()
}

// Purchases renders one line per purchase, in the same shape as Sales.
func Purchases(purchases []domain.Purchase) string {
	var b strings.Builder
	for _, p := range purchases {
		line(&b, "Purchased", p.Quantity, p.Product.Name, p.PurchasePrice, p.Total())
	}
	return b.String()
}

func line(b *strings.Builder, verb string, qty int, name string, each, total decimal.Decimal) {
	fmt.Fprintf(b, "%s %d * %s for $%s each [Total - $%s]\n",
		verb, qty, name, each.StringFixed(2), total.StringFixed(2))
}

// SalesTotal sums the line totals of all sales.
func SalesTotal(sales []domain.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Total())
	}
	return sum
}

// PurchasesTotal sums the line totals of all purchases.
func PurchasesTotal(purchases []domain.Purchase) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range purchases {
		sum = sum.Add(p.Total())
	}
	return sum
}
