package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"inventory_manager/domain"
)

// productFlags holds the raw product fields. Numbers stay strings until
// domain.ParseQuantity and domain.ParsePrice see them.
type productFlags struct {
	name        string
	description string
	quantity    string
	price       string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.quantity, "quantity", "0", "quantity in stock")
	cmd.Flags().StringVar(&f.price, "price", "0", "unit price")
}

// product turns the flags into a Product. In the shell, a command typed with
// no field flags asks for every field in turn.
func (a *app) product(cmd *cobra.Command, f *productFlags) (domain.Product, error) {
	if a.interactive && !anyChanged(cmd, "name", "description", "quantity", "price") {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\nEnter Product Details:")
		fields := []struct {
			label string
			dst   *string
		}{
			{"Product Name: ", &f.name},
			{"Description: ", &f.description},
			{"Quantity: ", &f.quantity},
			{"Price: ", &f.price},
		}
		for _, field := range fields {
			v, err := a.prompt(out, field.label)
			if err != nil {
				return domain.Product{}, err
			}
			*field.dst = v
		}
	}

	qty, err := domain.ParseQuantity(f.quantity)
	if err != nil {
		return domain.Product{}, err
	}
	price, err := domain.ParsePrice(f.price)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		Name:        strings.TrimSpace(f.name),
		Description: strings.TrimSpace(f.description),
		Quantity:    qty,
		Price:       price,
	}, nil
}

func newAddCmd(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.product(cmd, &f)
			if err != nil {
				return err
			}
			msg, err := a.session.AddProduct(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a product (replaces every field)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.product(cmd, &f)
			if err != nil {
				return err
			}
			msg, err := a.session.EditProduct(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a product",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			} else if a.interactive {
				var err error
				if name, err = a.prompt(cmd.OutOrStdout(), "Enter product name to delete: "); err != nil {
					return err
				}
			} else {
				return errors.New("product name required")
			}

			msg, err := a.session.DeleteProduct(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	var importFile string
	cmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import products from a JSON, NDJSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}
			products, err := readProductFile(importFile)
			if err != nil {
				return err
			}
			msg, err := a.session.ImportProducts(cmd.Context(), products)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&importFile, "file", "", "input file")
	return cmd
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}
