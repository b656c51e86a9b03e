package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/partshop/internal/cart/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrOutOfStock   = errors.New("product is out of stock")
)

// Summary is what the cart panel renders: lines in display order and the
// totals derived from them.
type Summary struct {
	SessionID  string
	Items      []domain.LineItem
	TotalPrice decimal.Decimal
	TotalItems int
}

func summarize(sessionID string, cart *domain.Cart) Summary {
	return Summary{
		SessionID:  sessionID,
		Items:      cart.Items(),
		TotalPrice: cart.TotalPrice(),
		TotalItems: cart.TotalItemCount(),
	}
}

type Service struct {
	repo    CartRepo
	catalog CatalogReader
}

func NewService(repo CartRepo, catalog CatalogReader) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *Service) CreateCart(ctx context.Context) (Summary, error) {
	id, err := s.repo.Create(ctx)
	if err != nil {
		return Summary{}, err
	}
	return summarize(id, domain.NewCart()), nil
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (Summary, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Summary{}, ErrInvalidInput
	}
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(sessionID, cart), nil
}

func (s *Service) DeleteCart(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, sessionID)
}

// AddItem adds one unit of the product. Out-of-stock products cannot be
// added, but lines already in the cart keep whatever quantity they have.
// The session is resolved before the product, so an unknown session is
// always ErrNotFound.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int64) (Summary, error) {
	if productID <= 0 {
		return Summary{}, ErrInvalidInput
	}

	return s.update(ctx, sessionID, func(c *domain.Cart) error {
		product, err := s.catalog.GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to get product %d: %w", productID, err)
		}
		if !product.InStock {
			return fmt.Errorf("product %d: %w", productID, ErrOutOfStock)
		}
		c.Add(product)
		return nil
	})
}

func (s *Service) SetItemQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (Summary, error) {
	return s.update(ctx, sessionID, func(c *domain.Cart) error {
		c.SetQuantity(productID, quantity)
		return nil
	})
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (Summary, error) {
	return s.update(ctx, sessionID, func(c *domain.Cart) error {
		c.Remove(productID)
		return nil
	})
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) (Summary, error) {
	return s.update(ctx, sessionID, func(c *domain.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *Service) update(ctx context.Context, sessionID string, fn func(*domain.Cart) error) (Summary, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Summary{}, ErrInvalidInput
	}
	cart, err := s.repo.Update(ctx, sessionID, fn)
	if err != nil {
		return Summary{}, err
	}
	return summarize(sessionID, cart), nil
}
