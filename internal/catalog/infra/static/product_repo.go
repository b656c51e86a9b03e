// Package static serves the catalog from a JSON seed held in memory.
package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dwikikusuma/partshop/internal/catalog/app"
	"github.com/dwikikusuma/partshop/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

//go:embed seed/catalog.json
var defaultSeed []byte

const reviewDateLayout = "2006-01-02"

type seedFile struct {
	Products []seedProduct `json:"products"`
	Reviews  []seedReview  `json:"reviews"`
}

type seedProduct struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	Image       string          `json:"image"`
	InStock     bool            `json:"in_stock"`
}

type seedReview struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Author    string `json:"author"`
	Role      string `json:"role"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Date      string `json:"date"`
}

type ProductRepo struct {
	products []domain.Product
	byID     map[int64]int
	reviews  []domain.Review
}

// NewDefaultProductRepo loads the embedded catalog.
func NewDefaultProductRepo() (*ProductRepo, error) {
	return Parse(defaultSeed)
}

// Open loads the catalog from path, falling back to the embedded seed when
// path is empty.
func Open(path string) (*ProductRepo, error) {
	if path == "" {
		return NewDefaultProductRepo()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func Load(r io.Reader) (*ProductRepo, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*ProductRepo, error) {
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	repo := &ProductRepo{
		products: make([]domain.Product, 0, len(seed.Products)),
		byID:     make(map[int64]int, len(seed.Products)),
		reviews:  make([]domain.Review, 0, len(seed.Reviews)),
	}

	for _, sp := range seed.Products {
		p, err := sp.toDomain()
		if err != nil {
			return nil, err
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id", p.ID)
		}
		repo.byID[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}

	reviewIDs := make(map[int64]struct{}, len(seed.Reviews))
	for _, sr := range seed.Reviews {
		r, err := sr.toDomain()
		if err != nil {
			return nil, err
		}
		if _, dup := reviewIDs[r.ID]; dup {
			return nil, fmt.Errorf("review %d: duplicate id", r.ID)
		}
		reviewIDs[r.ID] = struct{}{}
		if _, ok := repo.byID[r.ProductID]; !ok {
			return nil, fmt.Errorf("review %d: unknown product %d", r.ID, r.ProductID)
		}
		repo.reviews = append(repo.reviews, r)
	}

	return repo, nil
}

func (sp seedProduct) toDomain() (domain.Product, error) {
	c := domain.Category(sp.Category)
	switch {
	case sp.ID <= 0:
		return domain.Product{}, fmt.Errorf("product %d: id must be positive", sp.ID)
	case sp.Name == "":
		return domain.Product{}, fmt.Errorf("product %d: missing name", sp.ID)
	case c == domain.CategoryAll || !c.Valid():
		return domain.Product{}, fmt.Errorf("product %d: unknown category %q", sp.ID, sp.Category)
	case !sp.Price.IsPositive():
		return domain.Product{}, fmt.Errorf("product %d: price must be positive", sp.ID)
	case sp.Rating < 0 || sp.Rating > 5:
		return domain.Product{}, fmt.Errorf("product %d: rating %.1f out of range", sp.ID, sp.Rating)
	case sp.ReviewCount < 0:
		return domain.Product{}, fmt.Errorf("product %d: negative review count", sp.ID)
	}

	return domain.Product{
		ID:          sp.ID,
		Name:        sp.Name,
		Category:    c,
		Price:       sp.Price,
		Rating:      sp.Rating,
		ReviewCount: sp.ReviewCount,
		ImageRef:    sp.Image,
		InStock:     sp.InStock,
	}, nil
}

func (sr seedReview) toDomain() (domain.Review, error) {
	if sr.ID <= 0 {
		return domain.Review{}, fmt.Errorf("review %d: id must be positive", sr.ID)
	}
	if sr.Rating < 1 || sr.Rating > 5 {
		return domain.Review{}, fmt.Errorf("review %d: rating %d out of range", sr.ID, sr.Rating)
	}
	date, err := time.Parse(reviewDateLayout, sr.Date)
	if err != nil {
		return domain.Review{}, fmt.Errorf("review %d: %w", sr.ID, err)
	}

	return domain.Review{
		ID:        sr.ID,
		ProductID: sr.ProductID,
		Author:    sr.Author,
		Role:      sr.Role,
		Rating:    sr.Rating,
		Text:      sr.Text,
		Date:      date,
	}, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[idx], nil
}

func (r *ProductRepo) Reviews(ctx context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}
