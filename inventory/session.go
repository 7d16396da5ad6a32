// Package inventory couples catalog changes with the sales and purchase
// ledgers for one running session.
package inventory

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"inventory_manager/domain"
	"inventory_manager/report"
	"inventory_manager/store"
)

// Session owns the catalog and both ledgers for the life of the process.
type Session struct {
	catalog   domain.ProductStore
	sales     *store.SalesLedger
	purchases *store.PurchaseLedger
	logger    *zap.Logger
	now       func() time.Time
}

// Option customizes a Session.
type Option func(*Session)

// WithCatalog replaces the default in-memory catalog.
func WithCatalog(c domain.ProductStore) Option {
	return func(s *Session) { s.catalog = c }
}

// WithClock sets the time source used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates an empty session. A nil logger disables logging.
func NewSession(logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		catalog:   store.NewCatalog(),
		sales:     store.NewSalesLedger(),
		purchases: store.NewPurchaseLedger(),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog exposes the session's product store.
func (s *Session) Catalog() domain.ProductStore { return s.catalog }

// Sales returns the recorded sales in chronological order.
func (s *Session) Sales() []domain.Sale { return s.sales.Entries() }

// Purchases returns the recorded purchases in chronological order.
func (s *Session) Purchases() []domain.Purchase { return s.purchases.Entries() }

func (s *Session) AddProduct(ctx context.Context, p domain.Product) (string, error) {
	if err := s.catalog.Add(ctx, p); err != nil {
		s.logger.Warn("add rejected", zap.String("name", p.Name), zap.Error(err))
		return "", err
	}
	s.logger.Info("product added",
		zap.String("name", p.Name),
		zap.Int("quantity", p.Quantity),
		zap.String("price", p.Price.String()),
	)
	return fmt.Sprintf("Product '%s' added successfully", p.Name), nil
}

// EditProduct overwrites every field of an existing product.
func (s *Session) EditProduct(ctx context.Context, p domain.Product) (string, error) {
	if err := s.catalog.Update(ctx, p); err != nil {
		s.logger.Warn("edit rejected", zap.String("name", p.Name), zap.Error(err))
		return "", err
	}
	s.logger.Info("product updated", zap.String("name", p.Name))
	return fmt.Sprintf("Product '%s' updated successfully", p.Name), nil
}

// DeleteProduct removes a product from the catalog. Ledger entries that
// reference it are kept.
func (s *Session) DeleteProduct(ctx context.Context, name string) (string, error) {
	if err := s.catalog.Delete(ctx, name); err != nil {
		s.logger.Warn("delete rejected", zap.String("name", name), zap.Error(err))
		return "", err
	}
	s.logger.Info("product deleted", zap.String("name", name))
	return fmt.Sprintf("Product '%s' removed successfully", name), nil
}

// ImportProducts adds a batch of products, all or none.
func (s *Session) ImportProducts(ctx context.Context, products []domain.Product) (string, error) {
	if err := s.catalog.BulkAdd(ctx, products); err != nil {
		s.logger.Warn("import rejected", zap.Int("count", len(products)), zap.Error(err))
		return "", err
	}
	s.logger.Info("products imported", zap.Int("count", len(products)))
	return fmt.Sprintf("Imported %d products", len(products)), nil
}

// RecordSale takes quantity units out of stock at salePrice each. Nothing
// changes unless every check passes.
func (s *Session) RecordSale(ctx context.Context, name string, quantity int, salePrice decimal.Decimal) (string, error) {
	start := time.Now()
	if err := checkTransactionInput(quantity, salePrice); err != nil {
		s.logger.Warn("sale rejected", zap.String("name", name), zap.Error(err))
		return "", err
	}

	snapshot, err := s.catalog.Adjust(ctx, name, func(p *domain.Product) error {
		if quantity > p.Quantity {
			return domain.NewInsufficientStockError(name, quantity, p.Quantity)
		}
		p.Quantity -= quantity
		return nil
	})
	if err != nil {
		s.logger.Warn("sale rejected", zap.String("name", name), zap.Int("quantity", quantity), zap.Error(err))
		return "", err
	}

	sale := domain.Sale{
		ID:         uuid.NewString(),
		Product:    snapshot,
		Quantity:   quantity,
		SalePrice:  salePrice,
		RecordedAt: s.now(),
	}
	s.sales.Append(sale)

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("name", name),
		zap.Int("quantity", quantity),
		zap.String("price", salePrice.String()),
		zap.Int("remaining", snapshot.Quantity),
		zap.Duration("duration", time.Since(start)),
	)
	return fmt.Sprintf("Sale recorded successfully for '%s'", name), nil
}

// RecordPurchase adds quantity units to stock bought at purchasePrice each.
func (s *Session) RecordPurchase(ctx context.Context, name string, quantity int, purchasePrice decimal.Decimal) (string, error) {
	start := time.Now()
	if err := checkTransactionInput(quantity, purchasePrice); err != nil {
		s.logger.Warn("purchase rejected", zap.String("name", name), zap.Error(err))
		return "", err
	}

	snapshot, err := s.catalog.Adjust(ctx, name, func(p *domain.Product) error {
		if quantity > math.MaxInt-p.Quantity {
			return domain.NewInvalidInputError("quantity", "exceeds maximum stock", quantity)
		}
		p.Quantity += quantity
		return nil
	})
	if err != nil {
		s.logger.Warn("purchase rejected", zap.String("name", name), zap.Int("quantity", quantity), zap.Error(err))
		return "", err
	}

	purchase := domain.Purchase{
		ID:            uuid.NewString(),
		Product:       snapshot,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		RecordedAt:    s.now(),
	}
	s.purchases.Append(purchase)

	s.logger.Info("purchase recorded",
		zap.String("purchase_id", purchase.ID),
		zap.String("name", name),
		zap.Int("quantity", quantity),
		zap.String("price", purchasePrice.String()),
		zap.Int("on_hand", snapshot.Quantity),
		zap.Duration("duration", time.Since(start)),
	)
	return fmt.Sprintf("Purchase recorded successfully for '%s'", name), nil
}

func checkTransactionInput(quantity int, price decimal.Decimal) error {
	if quantity <= 0 {
		return domain.NewInvalidInputError("quantity", "must be positive", quantity)
	}
	if price.IsNegative() {
		return domain.NewInvalidInputError("price", "must be non-negative", price.String())
	}
	return nil
}

// InventoryReport renders the catalog, filtered and sorted by filter.
func (s *Session) InventoryReport(ctx context.Context, filter domain.ListFilter) (string, error) {
	products, err := s.catalog.List(ctx, filter)
	if err != nil {
		return "", err
	}
	return report.Inventory(products), nil
}

func (s *Session) SalesReport() string { return report.Sales(s.sales.Entries()) }

func (s *Session) PurchaseReport() string { return report.Purchases(s.purchases.Entries()) }
