package store

import (
	"sync"

	"inventory_manager/domain"
)

// Ledger is an append-only record of transactions kept in insertion order.
type Ledger[T any] struct {
	mu      sync.RWMutex
	entries []T
}

// SalesLedger records every completed sale.
type SalesLedger = Ledger[domain.Sale]

// PurchaseLedger records every completed purchase.
type PurchaseLedger = Ledger[domain.Purchase]

func NewSalesLedger() *SalesLedger { return &Ledger[domain.Sale]{} }

func NewPurchaseLedger() *PurchaseLedger { return &Ledger[domain.Purchase]{} }

// Append adds an entry at the end of the ledger.
func (l *Ledger[T]) Append(entry T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the ledger in the order entries were appended.
func (l *Ledger[T]) Entries() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
