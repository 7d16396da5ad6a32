package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory_manager/domain"
)

func TestLedger_PreservesInsertionOrder(t *testing.T) {
	l := NewSalesLedger()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Entries())

	for _, name := range []string{"c", "a", "b"} {
		l.Append(domain.Sale{Product: domain.Product{Name: name}, Quantity: 1})
	}

	entries := l.Entries()
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "c", entries[0].Product.Name)
	assert.Equal(t, "a", entries[1].Product.Name)
	assert.Equal(t, "b", entries[2].Product.Name)
}

func TestLedger_EntriesIsACopy(t *testing.T) {
	l := NewPurchaseLedger()
	l.Append(domain.Purchase{Product: domain.Product{Name: "Widget"}, Quantity: 4})

	entries := l.Entries()
	entries[0].Quantity = 100
	entries[0].Product.Name = "Tampered"

	again := l.Entries()
	assert.Equal(t, 4, again[0].Quantity)
	assert.Equal(t, "Widget", again[0].Product.Name)
}
