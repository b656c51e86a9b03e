package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	catalogapp "github.com/dwikikusuma/partshop/internal/catalog/app"
	"github.com/dwikikusuma/partshop/internal/catalog/domain"
)

func catalogCmd(c *cli) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products, optionally filtered by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := c.catalog.ListProducts(cmd.Context(), category)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tSTATUS")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f (%d)\t%s\n",
					p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Rating, p.ReviewCount, badges(p))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryAll), "category to show")
	return cmd
}

func badges(p domain.Product) string {
	var out []string
	if !p.InStock {
		out = append(out, "out of stock")
	}
	if p.IsBestseller() {
		out = append(out, "bestseller")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ", ")
}

func categoriesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, cat := range c.catalog.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), cat)
			}
			return nil
		},
	}
}

func reviewsCmd(c *cli) *cobra.Command {
	var productID int64

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Show customer reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			if productID < 0 {
				return fmt.Errorf("invalid --product %d: %w", productID, catalogapp.ErrInvalidInput)
			}

			var (
				reviews []domain.Review
				err     error
			)
			if productID > 0 {
				reviews, err = c.catalog.ProductReviews(cmd.Context(), productID)
			} else {
				reviews, err = c.catalog.Reviews(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range reviews {
				fmt.Fprintf(out, "%s  %s (%s)  %s\n", r.Date.Format("2006-01-02"), r.Author, r.Role, strings.Repeat("*", r.Rating))
				fmt.Fprintf(out, "  product %d: %s\n", r.ProductID, r.Text)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "only reviews for this product id")
	return cmd
}
