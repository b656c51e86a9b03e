package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dwikikusuma/partshop/internal/catalog/app"
	"github.com/dwikikusuma/partshop/internal/catalog/domain"
	"github.com/dwikikusuma/partshop/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	Image       string          `json:"image"`
	InStock     bool            `json:"in_stock"`
	Bestseller  bool            `json:"bestseller"`
}

type ReviewResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Author    string `json:"author"`
	Role      string `json:"role"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Date      string `json:"date"`
}

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.GET("/products", h.ListProducts)
	g.GET("/products/:id", h.GetProduct)
	g.GET("/products/:id/reviews", h.ListProductReviews)
	g.GET("/reviews", h.ListReviews)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories := h.svc.Categories()
	out := make([]string, 0, len(categories))
	for _, cat := range categories {
		out = append(out, string(cat))
	}
	return response.WriteSuccessResponse(c, "", out)
}

func (h *Handler) ListProducts(c echo.Context) error {
	products, err := h.svc.ListProducts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return h.fail(c, "ListProducts", err)
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return response.WriteSuccessResponse(c, "", out)
}

func (h *Handler) GetProduct(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return h.fail(c, "GetProduct", err)
	}

	p, err := h.svc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, "GetProduct", err)
	}
	return response.WriteSuccessResponse(c, "", toProductResponse(p))
}

func (h *Handler) ListProductReviews(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return h.fail(c, "ListProductReviews", err)
	}

	reviews, err := h.svc.ProductReviews(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, "ListProductReviews", err)
	}
	return response.WriteSuccessResponse(c, "", toReviewResponses(reviews))
}

func (h *Handler) ListReviews(c echo.Context) error {
	reviews, err := h.svc.Reviews(c.Request().Context())
	if err != nil {
		return h.fail(c, "ListReviews", err)
	}
	return response.WriteSuccessResponse(c, "", toReviewResponses(reviews))
}

func (h *Handler) fail(c echo.Context, component string, err error) error {
	zerolog.Ctx(c.Request().Context()).Error().Err(err).Str("component", component).Msg("")
	return response.WriteErrorResponse(c, mapErr(err), err, nil)
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, app.ErrInvalidInput
	}
	return id, nil
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Image:       p.ImageRef,
		InStock:     p.InStock,
		Bestseller:  p.IsBestseller(),
	}
}

func toReviewResponses(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{
			ID:        r.ID,
			ProductID: r.ProductID,
			Author:    r.Author,
			Role:      r.Role,
			Rating:    r.Rating,
			Text:      r.Text,
			Date:      r.Date.Format("2006-01-02"),
		})
	}
	return out
}
