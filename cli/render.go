package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"inventory_manager/domain"
)

var (
	accent = lipgloss.Color("#D97706")
	dim    = lipgloss.Color("#6B7280")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	totalStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// writeTextReport prints a titled report body. total, when set, is printed
// under a non-empty body.
func writeTextReport(w io.Writer, title, body string, total *decimal.Decimal) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(title+":"))
	if body == "" {
		fmt.Fprintln(w, dimStyle.Render("(no records)"))
		return
	}
	fmt.Fprint(w, body)
	if total != nil {
		fmt.Fprintln(w, totalStyle.Render("Total - $"+total.StringFixed(2)))
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(dim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func money(d decimal.Decimal) string { return "$" + d.StringFixed(2) }

func inventoryTable(products []domain.Product) string {
	t := newTable("Name", "Description", "Price", "Quantity")
	for _, p := range products {
		t.Row(p.Name, p.Description, money(p.Price), strconv.Itoa(p.Quantity))
	}
	return t.String()
}

func salesTable(sales []domain.Sale) string {
	t := newTable("Product", "Quantity", "Sale Price", "Total")
	for _, s := range sales {
		t.Row(s.Product.Name, strconv.Itoa(s.Quantity), money(s.SalePrice), money(s.Total()))
	}
	return t.String()
}

func purchasesTable(purchases []domain.Purchase) string {
	t := newTable("Product", "Quantity", "Purchase Price", "Total")
	for _, p := range purchases {
		t.Row(p.Product.Name, strconv.Itoa(p.Quantity), money(p.PurchasePrice), money(p.Total()))
	}
	return t.String()
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
