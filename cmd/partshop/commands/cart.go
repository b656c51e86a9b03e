package commands

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/partshop/internal/cart/app"
)

func cartCmd(c *cli) *cobra.Command {
	var (
		adds    []int64
		sets    []string
		removes []int64
	)

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Build a cart and print it with totals",
		Long: "Build a cart for a one-off session and print it. Adds are applied first,\n" +
			"in order, then quantity changes (ID=QTY, QTY <= 0 removes), then removals.",
		Example: "  partshop cart --add 1 --add 3 --add 3 --set 1=2 --remove 4",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			summary, err := c.cart.CreateCart(ctx)
			if err != nil {
				return err
			}
			id := summary.SessionID

			for _, productID := range adds {
				if summary, err = c.cart.AddItem(ctx, id, productID); err != nil {
					return err
				}
			}
			for _, raw := range sets {
				productID, qty, err := parseSet(raw)
				if err != nil {
					return err
				}
				if summary, err = c.cart.SetItemQuantity(ctx, id, productID, qty); err != nil {
					return err
				}
			}
			for _, productID := range removes {
				if summary, err = c.cart.RemoveItem(ctx, id, productID); err != nil {
					return err
				}
			}

			return printCart(cmd, summary)
		},
	}

	cmd.Flags().Int64SliceVar(&adds, "add", nil, "add one unit of a product id (repeatable)")
	cmd.Flags().StringSliceVar(&sets, "set", nil, "set a quantity as ID=QTY (repeatable)")
	cmd.Flags().Int64SliceVar(&removes, "remove", nil, "remove a product id (repeatable)")
	return cmd
}

func parseSet(raw string) (int64, int, error) {
	idPart, qtyPart, ok := strings.Cut(raw, "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --set %q: want ID=QTY: %w", raw, cartapp.ErrInvalidInput)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --set %q: %w", raw, cartapp.ErrInvalidInput)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(qtyPart))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --set %q: %w", raw, cartapp.ErrInvalidInput)
	}
	return id, qty, nil
}

func printCart(cmd *cobra.Command, s cartapp.Summary) error {
	out := cmd.OutOrStdout()
	if len(s.Items) == 0 {
		fmt.Fprintln(out, "cart is empty")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
	for _, li := range s.Items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			li.Product.ID, li.Product.Name, li.Quantity, li.Product.Price.StringFixed(2), li.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(w, "\t\t%d\t\t%s\n", s.TotalItems, s.TotalPrice.StringFixed(2))
	return w.Flush()
}
