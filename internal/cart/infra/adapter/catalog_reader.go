package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/partshop/internal/cart/app"
	catalogapp "github.com/dwikikusuma/partshop/internal/catalog/app"
	catalog "github.com/dwikikusuma/partshop/internal/catalog/domain"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID int64) (catalog.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return catalog.Product{}, cartapp.ErrNotFound
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return catalog.Product{}, cartapp.ErrInvalidInput
	case err != nil:
		return catalog.Product{}, err
	}
	return p, nil
}
