package app

import (
	"context"

	"github.com/dwikikusuma/partshop/internal/catalog/domain"
)

type ProductRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	Reviews(ctx context.Context) ([]domain.Review, error)
}
