package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/partshop/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// ListProducts returns the catalog filtered by category. An empty category
// is treated as domain.CategoryAll.
func (s *Service) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	c := domain.Category(strings.TrimSpace(category))
	if c == "" {
		c = domain.CategoryAll
	}
	if !c.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", category, ErrInvalidInput)
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByCategory(products, c), nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Categories() []domain.Category {
	out := make([]domain.Category, len(domain.Categories))
	copy(out, domain.Categories)
	return out
}

func (s *Service) Reviews(ctx context.Context) ([]domain.Review, error) {
	return s.repo.Reviews(ctx)
}

func (s *Service) ProductReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Reviews(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}
