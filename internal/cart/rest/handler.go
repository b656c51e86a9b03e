package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dwikikusuma/partshop/internal/cart/app"
	"github.com/dwikikusuma/partshop/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
}

// Quantity is required; an explicit value <= 0 removes the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type LineItemResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	InStock   bool            `json:"in_stock"`
}

type CartResponse struct {
	ID         string             `json:"id"`
	Items      []LineItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	TotalItems int                `json:"total_items"`
}

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(g *echo.Group) {
	g.POST("/carts", h.CreateCart)
	g.GET("/carts/:id", h.GetCart)
	g.DELETE("/carts/:id", h.DeleteCart)
	g.POST("/carts/:id/items", h.AddItem)
	g.DELETE("/carts/:id/items", h.ClearCart)
	g.PUT("/carts/:id/items/:productId", h.SetItemQuantity)
	g.DELETE("/carts/:id/items/:productId", h.RemoveItem)
}

func (h *Handler) CreateCart(c echo.Context) error {
	cart, err := h.svc.CreateCart(c.Request().Context())
	if err != nil {
		return h.fail(c, "CreateCart", err)
	}
	return response.WriteSuccessResponseWithStatus(c, http.StatusCreated, "", toResponse(cart))
}

func (h *Handler) GetCart(c echo.Context) error {
	cart, err := h.svc.GetCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "GetCart", err)
	}
	return response.WriteSuccessResponse(c, "", toResponse(cart))
}

func (h *Handler) DeleteCart(c echo.Context) error {
	if err := h.svc.DeleteCart(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, "DeleteCart", err)
	}
	return response.WriteSuccessResponse(c, "cart deleted", nil)
}

func (h *Handler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, "AddItem", app.ErrInvalidInput)
	}

	cart, err := h.svc.AddItem(c.Request().Context(), c.Param("id"), req.ProductID)
	if err != nil {
		return h.fail(c, "AddItem", err)
	}
	return response.WriteSuccessResponse(c, "", toResponse(cart))
}

func (h *Handler) SetItemQuantity(c echo.Context) error {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return h.fail(c, "SetItemQuantity", err)
	}

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil || req.Quantity == nil {
		return h.fail(c, "SetItemQuantity", app.ErrInvalidInput)
	}

	cart, err := h.svc.SetItemQuantity(c.Request().Context(), c.Param("id"), productID, *req.Quantity)
	if err != nil {
		return h.fail(c, "SetItemQuantity", err)
	}
	return response.WriteSuccessResponse(c, "", toResponse(cart))
}

func (h *Handler) RemoveItem(c echo.Context) error {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return h.fail(c, "RemoveItem", err)
	}

	cart, err := h.svc.RemoveItem(c.Request().Context(), c.Param("id"), productID)
	if err != nil {
		return h.fail(c, "RemoveItem", err)
	}
	return response.WriteSuccessResponse(c, "", toResponse(cart))
}

func (h *Handler) ClearCart(c echo.Context) error {
	cart, err := h.svc.ClearCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "ClearCart", err)
	}
	return response.WriteSuccessResponse(c, "", toResponse(cart))
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
	case errors.Is(err, app.ErrOutOfStock):
		return http.StatusConflict
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

func toResponse(cart app.Summary) CartResponse {
	items := make([]LineItemResponse, 0, len(cart.Items))
	for _, li := range cart.Items {
		items = append(items, LineItemResponse{
			ProductID: li.Product.ID,
			Name:      li.Product.Name,
			Category:  string(li.Product.Category),
			UnitPrice: li.Product.Price,
			Quantity:  li.Quantity,
			Subtotal:  li.Subtotal(),
			InStock:   li.Product.InStock,
		})
	}

	return CartResponse{
		ID:         cart.SessionID,
		Items:      items,
		TotalPrice: cart.TotalPrice,
		TotalItems: cart.TotalItems,
	}
}
