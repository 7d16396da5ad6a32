package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inventory_manager/domain"
	"inventory_manager/report"
)

func outputFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVar(dst, "output", "text", "output format: text|table|json")
}

func newInventoryReportCmd(a *app) *cobra.Command {
	var sortBy, order, minPrice, maxPrice, output string
	var lowStock int
	cmd := &cobra.Command{
		Use:   "inventory-report",
		Short: "Generate the inventory report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.ListFilter{SortBy: sortBy, Order: order}
			if cmd.Flags().Changed("min-price") {
				d, err := domain.ParsePrice(minPrice)
				if err != nil {
					return err
				}
				filter.MinPrice = &d
			}
			if cmd.Flags().Changed("max-price") {
				d, err := domain.ParsePrice(maxPrice)
				if err != nil {
					return err
				}
				filter.MaxPrice = &d
			}
			if cmd.Flags().Changed("low-stock") {
				filter.LowStock = &lowStock
			}

			out := cmd.OutOrStdout()
			switch output {
			case "json":
				products, err := a.session.Catalog().List(cmd.Context(), filter)
				if err != nil {
					return err
				}
				return writeJSON(out, products)
			case "table":
				products, err := a.session.Catalog().List(cmd.Context(), filter)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, inventoryTable(products))
				return nil
			case "text", "":
				text, err := a.session.InventoryReport(cmd.Context(), filter)
				if err != nil {
					return err
				}
				writeTextReport(out, "Inventory Report", text, nil)
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", output)
			}
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort-by", "name", "sort field: name|price|quantity")
	cmd.Flags().StringVar(&order, "order", "asc", "sort order: asc|desc")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "only products priced at or above")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "only products priced at or below")
	cmd.Flags().IntVar(&lowStock, "low-stock", 0, "only products with at most this many in stock")
	outputFlag(cmd, &output)
	return cmd
}

func newSalesReportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "sales-report",
		Short: "Generate the sales report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sales := a.session.Sales()
			out := cmd.OutOrStdout()
			switch output {
			case "json":
				return writeJSON(out, sales)
			case "table":
				fmt.Fprintln(out, salesTable(sales))
				return nil
			case "text", "":
				total := report.SalesTotal(sales)
				writeTextReport(out, "Sales Report", a.session.SalesReport(), &total)
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", output)
			}
		},
	}
	outputFlag(cmd, &output)
	return cmd
}

func newPurchaseReportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "purchase-report",
		Short: "Generate the purchase report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			purchases := a.session.Purchases()
			out := cmd.OutOrStdout()
			switch output {
			case "json":
				return writeJSON(out, purchases)
			case "table":
				fmt.Fprintln(out, purchasesTable(purchases))
				return nil
			case "text", "":
				total := report.PurchasesTotal(purchases)
				writeTextReport(out, "Purchase Report", a.session.PurchaseReport(), &total)
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", output)
			}
		},
	}
	outputFlag(cmd, &output)
	return cmd
}
