package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"inventory_manager/domain"
)

type transactionKind struct {
	use, short    string
	quantityLabel string
	priceLabel    string
	record        func(ctx context.Context, name string, qty int, price decimal.Decimal) (string, error)
}

func newRecordSaleCmd(a *app) *cobra.Command {
	return newTransactionCmd(a, transactionKind{
		use:           "record-sale",
		short:         "Record a sale",
		quantityLabel: "Enter quantity to sell: ",
		priceLabel:    "Enter sale price: ",
		record: func(ctx context.Context, name string, qty int, price decimal.Decimal) (string, error) {
			return a.session.RecordSale(ctx, name, qty, price)
		},
	})
}

func newRecordPurchaseCmd(a *app) *cobra.Command {
	return newTransactionCmd(a, transactionKind{
		use:           "record-purchase",
		short:         "Record a purchase",
		quantityLabel: "Enter quantity purchased: ",
		priceLabel:    "Enter purchase price: ",
		record: func(ctx context.Context, name string, qty int, price decimal.Decimal) (string, error) {
			return a.session.RecordPurchase(ctx, name, qty, price)
		},
	})
}

func newTransactionCmd(a *app, k transactionKind) *cobra.Command {
	var name, quantity, price string
	cmd := &cobra.Command{
		Use:   k.use,
		Short: k.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if a.interactive && !anyChanged(cmd, "name", "quantity", "price") {
				out := cmd.OutOrStdout()
				var err error
				if name, err = a.prompt(out, "Enter product name: "); err != nil {
					return err
				}
				// unknown products are reported before asking for numbers
				if _, err := a.session.Catalog().Get(ctx, name); err != nil {
					return err
				}
				if quantity, err = a.prompt(out, k.quantityLabel); err != nil {
					return err
				}
				if price, err = a.prompt(out, k.priceLabel); err != nil {
					return err
				}
			}

			qty, err := domain.ParseQuantity(quantity)
			if err != nil {
				return err
			}
			p, err := domain.ParsePrice(price)
			if err != nil {
				return err
			}
			msg, err := k.record(ctx, strings.TrimSpace(name), qty, p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&quantity, "quantity", "", "number of units")
	cmd.Flags().StringVar(&price, "price", "", "price per unit")
	return cmd
}
