package app

import (
	"context"

	"github.com/dwikikusuma/partshop/internal/cart/domain"
	catalog "github.com/dwikikusuma/partshop/internal/catalog/domain"
)

// CartRepo stores one cart per session. Update runs fn with exclusive access
// to the session's cart.
type CartRepo interface {
	Create(ctx context.Context) (string, error)
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Update(ctx context.Context, sessionID string, fn func(*domain.Cart) error) (*domain.Cart, error)
	Delete(ctx context.Context, sessionID string) error
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int64) (catalog.Product, error)
}
