package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/partshop/internal/cart/app"
	"github.com/dwikikusuma/partshop/internal/cart/domain"
	"github.com/google/uuid"
)

// CartRepo keeps session carts for the lifetime of the process. Callers only
// ever see clones, so a cart is mutated by at most one goroutine at a time.
type CartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts: make(map[string]*domain.Cart),
	}
}

func (r *CartRepo) Create(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()

	r.mu.Lock()
	r.carts[id] = domain.NewCart()
	r.mu.Unlock()

	return id, nil
}

func (r *CartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, app.ErrNotFound
	}
	return cart.Clone(), nil
}

func (r *CartRepo) Update(ctx context.Context, sessionID string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, app.ErrNotFound
	}

	next := cart.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	r.carts[sessionID] = next

	return next.Clone(), nil
}

func (r *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[sessionID]; !ok {
		return app.ErrNotFound
	}
	delete(r.carts, sessionID)
	return nil
}

func (r *CartRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}
