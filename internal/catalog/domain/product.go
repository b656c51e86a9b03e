package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryAll         Category = "All"
	CategoryEngine      Category = "Engine"
	CategoryGaskets     Category = "Gaskets"
	CategoryLubrication Category = "Lubrication"
	CategoryCooling     Category = "Cooling"
)

// Categories lists the selectable categories in display order, sentinel first.
var Categories = []Category{
	CategoryAll,
	CategoryEngine,
	CategoryGaskets,
	CategoryLubrication,
	CategoryCooling,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

const bestsellerReviewThreshold = 50

type Product struct {
	ID          int64
	Name        string
	Category    Category
	Price       decimal.Decimal
	Rating      float64
	ReviewCount int
	ImageRef    string
	InStock     bool
}

// IsBestseller reports whether the product earns the "hit" badge.
func (p Product) IsBestseller() bool {
	return p.InStock && p.ReviewCount > bestsellerReviewThreshold
}

// FilterByCategory returns the products in the given category, preserving
// input order. CategoryAll returns products as is.
func FilterByCategory(products []Product, category Category) []Product {
	if category == CategoryAll {
		return products
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
