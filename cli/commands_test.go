package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"inventory_manager/domain"
	"inventory_manager/inventory"
)

// newTestApp returns an app with a ready session so setup is skipped.
func newTestApp(t *testing.T) *app {
	t.Helper()
	a := newApp()
	a.logger = zaptest.NewLogger(t)
	a.session = inventory.NewSession(a.logger)
	return a
}

func run(a *app, stdin string, args ...string) (string, error) {
	cmd := newRootCmd(a)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		// cobra falls back to os.Args when args are nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAddSellReport(t *testing.T) {
	a := newTestApp(t)

	out, err := run(a, "", "add", "--name", "Widget", "--description", "desc", "--quantity", "10", "--price", "19.99")
	require.NoError(t, err)
	assert.Contains(t, out, "Product 'Widget' added successfully")

	out, err = run(a, "", "record-sale", "--name", "Widget", "--quantity", "3", "--price", "25.00")
	require.NoError(t, err)
	assert.Contains(t, out, "Sale recorded successfully for 'Widget'")

	out, err = run(a, "", "inventory-report")
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory Report:")
	assert.Contains(t, out, "Widget\tdesc - [$19.99\t7] in Stock\n")

	out, err = run(a, "", "sales-report")
	require.NoError(t, err)
	assert.Contains(t, out, "Sold 3 * Widget for $25.00 each [Total - $75.00]\n")
	assert.Contains(t, out, "Total - $75.00")
}

func TestRecordPurchaseAndReport(t *testing.T) {
	a := newTestApp(t)
	_, err := run(a, "", "add", "--name", "Bolt", "--price", "0.10")
	require.NoError(t, err)

	out, err := run(a, "", "record-purchase", "--name", "Bolt", "--quantity", "100", "--price", "$0.04")
	require.NoError(t, err)
	assert.Contains(t, out, "Purchase recorded successfully for 'Bolt'")

	out, err = run(a, "", "purchase-report")
	require.NoError(t, err)
	assert.Contains(t, out, "Purchased 100 * Bolt for $0.04 each [Total - $4.00]")
}

func TestEditAndDelete(t *testing.T) {
	a := newTestApp(t)
	_, err := run(a, "", "add", "--name", "Widget", "--description", "old", "--quantity", "4", "--price", "1")
	require.NoError(t, err)

	out, err := run(a, "", "edit", "--name", "Widget", "--quantity", "9", "--price", "2.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Product 'Widget' updated successfully")

	out, err = run(a, "", "inventory-report")
	require.NoError(t, err)
	assert.Contains(t, out, "Widget\t - [$2.50\t9] in Stock")

	out, err = run(a, "", "delete", "Widget")
	require.NoError(t, err)
	assert.Contains(t, out, "Product 'Widget' removed successfully")
	assert.Equal(t, 0, a.session.Catalog().Len())
}

func TestCommandErrors(t *testing.T) {
	a := newTestApp(t)
	_, err := run(a, "", "add", "--name", "Gadget", "--quantity", "0", "--price", "29.99")
	require.NoError(t, err)

	cases := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{"duplicate add", []string{"add", "--name", "Gadget"}, domain.IsDuplicateProductError},
		{"edit missing", []string{"edit", "--name", "Ghost"}, domain.IsProductNotFoundError},
		{"delete missing", []string{"delete", "Ghost"}, domain.IsProductNotFoundError},
		{"sale missing", []string{"record-sale", "--name", "Ghost", "--quantity", "1", "--price", "1"}, domain.IsProductNotFoundError},
		{"sale out of stock", []string{"record-sale", "--name", "Gadget", "--quantity", "1", "--price", "10.00"}, domain.IsInsufficientStockError},
		{"sale bad quantity", []string{"record-sale", "--name", "Gadget", "--quantity", "many", "--price", "1"}, domain.IsInvalidInputError},
		{"sale missing price", []string{"record-sale", "--name", "Gadget", "--quantity", "1"}, domain.IsInvalidInputError},
		{"purchase bad price", []string{"record-purchase", "--name", "Gadget", "--quantity", "1", "--price", "cheap"}, domain.IsInvalidInputError},
		{"purchase zero quantity", []string{"record-purchase", "--name", "Gadget", "--quantity", "0", "--price", "1"}, domain.IsInvalidInputError},
		{"add empty name", []string{"add", "--price", "1"}, domain.IsInvalidInputError},
		{"add bad price", []string{"add", "--name", "X", "--price", "1,5"}, domain.IsInvalidInputError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(a, "", tc.args...)
			require.Error(t, err)
			assert.True(t, tc.check(err), "unexpected error: %v", err)
		})
	}

	// nothing above changed the session
	p, err := a.session.Catalog().Get(context.Background(), "Gadget")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity)
	assert.Empty(t, a.session.Sales())
	assert.Empty(t, a.session.Purchases())
	assert.Equal(t, 1, a.session.Catalog().Len())
}

func TestDelete_NameRequiredOutsideShell(t *testing.T) {
	a := newTestApp(t)
	_, err := run(a, "", "delete")
	assert.EqualError(t, err, "product name required")
}

func TestReportOutputs(t *testing.T) {
	a := newTestApp(t)
	_, err := run(a, "", "add", "--name", "Alpha", "--description", "first", "--quantity", "3", "--price", "5")
	require.NoError(t, err)
	_, err = run(a, "", "add", "--name", "Beta", "--quantity", "8", "--price", "2")
	require.NoError(t, err)
	_, err = run(a, "", "record-sale", "--name", "Alpha", "--quantity", "1", "--price", "6")
	require.NoError(t, err)

	t.Run("inventory json sorted by price", func(t *testing.T) {
		out, err := run(a, "", "inventory-report", "--output", "json", "--sort-by", "price")
		require.NoError(t, err)
		var products []domain.Product
		require.NoError(t, json.Unmarshal([]byte(out), &products))
		require.Len(t, products, 2)
		assert.Equal(t, "Beta", products[0].Name)
		assert.Equal(t, 2, products[1].Quantity)
	})

	t.Run("inventory filters", func(t *testing.T) {
		out, err := run(a, "", "inventory-report", "--low-stock", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Alpha\tfirst - [$5.00\t2] in Stock")
		assert.NotContains(t, out, "Beta")

		out, err = run(a, "", "inventory-report", "--min-price", "3", "--max-price", "10")
		require.NoError(t, err)
		assert.Contains(t, out, "Alpha")
		assert.NotContains(t, out, "Beta")
	})

	t.Run("inventory bad price filter", func(t *testing.T) {
		_, err := run(a, "", "inventory-report", "--min-price", "lots")
		assert.True(t, domain.IsInvalidInputError(err))
	})

	t.Run("inventory table", func(t *testing.T) {
		out, err := run(a, "", "inventory-report", "--output", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "Name")
		assert.Contains(t, out, "Alpha")
		assert.Contains(t, out, "$5.00")
	})

	t.Run("sales json", func(t *testing.T) {
		out, err := run(a, "", "sales-report", "--output", "json")
		require.NoError(t, err)
		var sales []domain.Sale
		require.NoError(t, json.Unmarshal([]byte(out), &sales))
		require.Len(t, sales, 1)
		assert.Equal(t, "Alpha", sales[0].Product.Name)
		assert.Equal(t, "6.00", sales[0].SalePrice.StringFixed(2))
	})

	t.Run("sales table", func(t *testing.T) {
		out, err := run(a, "", "sales-report", "--output", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "Sale Price")
		assert.Contains(t, out, "$6.00")
	})

	t.Run("empty purchase report", func(t *testing.T) {
		out, err := run(a, "", "purchase-report")
		require.NoError(t, err)
		assert.Contains(t, out, "Purchase Report:")
		assert.Contains(t, out, "(no records)")
	})

	t.Run("empty purchase json", func(t *testing.T) {
		out, err := run(a, "", "purchase-report", "--output", "json")
		require.NoError(t, err)
		assert.Equal(t, "[]\n", out)
	})

	t.Run("unknown output format", func(t *testing.T) {
		_, err := run(a, "", "sales-report", "--output", "xml")
		assert.EqualError(t, err, "unknown output format: xml")
	})
}

func TestUnknownCommand(t *testing.T) {
	a := newTestApp(t)
	_, err := run(a, "", "frobnicate")
	assert.Error(t, err)
}
