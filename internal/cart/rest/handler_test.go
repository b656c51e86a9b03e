package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dwikikusuma/partshop/internal/cart/app"
	"github.com/dwikikusuma/partshop/internal/cart/infra/adapter"
	"github.com/dwikikusuma/partshop/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/partshop/internal/catalog/app"
	"github.com/dwikikusuma/partshop/internal/catalog/infra/static"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    CartResponse `json:"data"`
}

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	repo, err := static.NewDefaultProductRepo()
	require.NoError(t, err)

	catalogSvc := catalogapp.NewService(repo)
	cartSvc := app.NewService(memory.NewCartRepo(), adapter.NewCatalogServiceReader(catalogSvc))

	e := echo.New()
	NewHandler(cartSvc).Register(e.Group("/api/v1"))
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func createCart(t *testing.T, e *echo.Echo) string {
	t.Helper()
	code, body := do(t, e, http.MethodPost, "/api/v1/carts", "")
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, body.Data.ID)
	return body.Data.ID
}

func TestCartFlow(t *testing.T) {
	e := newServer(t)
	id := createCart(t, e)
	base := "/api/v1/carts/" + id

	code, body := do(t, e, http.MethodPost, base+"/items", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, body.Data.TotalItems)

	do(t, e, http.MethodPost, base+"/items", `{"product_id":3}`)
	code, body = do(t, e, http.MethodPost, base+"/items", `{"product_id":3}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, body.Data.TotalItems)
	assert.Equal(t, "6280", body.Data.TotalPrice.String())
	require.Len(t, body.Data.Items, 2)
	assert.Equal(t, "1780", body.Data.Items[1].Subtotal.String())

	code, body = do(t, e, http.MethodPut, base+"/items/1", `{"quantity":2}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "10780", body.Data.TotalPrice.String())

	code, body = do(t, e, http.MethodPut, base+"/items/3", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, int64(1), body.Data.Items[0].ProductID)

	code, body = do(t, e, http.MethodDelete, base+"/items/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Data.Items)

	code, body = do(t, e, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, body.Data.TotalItems)
	assert.True(t, body.Data.TotalPrice.IsZero())
}

func TestClearAndDelete(t *testing.T) {
	e := newServer(t)
	id := createCart(t, e)
	base := "/api/v1/carts/" + id

	do(t, e, http.MethodPost, base+"/items", `{"product_id":4}`)
	code, body := do(t, e, http.MethodDelete, base+"/items", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Data.Items)

	code, _ = do(t, e, http.MethodDelete, base, "")
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, e, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCartErrors(t *testing.T) {
	e := newServer(t)
	id := createCart(t, e)
	base := "/api/v1/carts/" + id

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"out of stock", http.MethodPost, base + "/items", `{"product_id":5}`, http.StatusConflict},
		{"unknown product", http.MethodPost, base + "/items", `{"product_id":99}`, http.StatusNotFound},
		{"missing product id", http.MethodPost, base + "/items", `{}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, base + "/items", `{"product_id":`, http.StatusBadRequest},
		{"unknown cart", http.MethodGet, "/api/v1/carts/nope", "", http.StatusNotFound},
		{"bad product id in path", http.MethodDelete, base + "/items/abc", "", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := do(t, e, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, code)
			assert.Equal(t, "error", body.Status)
		})
	}
}

func TestSetQuantityOnAbsentItemIsNoop(t *testing.T) {
	e := newServer(t)
	id := createCart(t, e)
	base := "/api/v1/carts/" + id

	do(t, e, http.MethodPost, base+"/items", `{"product_id":1}`)
	code, body := do(t, e, http.MethodPut, base+"/items/2", `{"quantity":4}`)

	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, 1, body.Data.TotalItems)
}

func TestSetQuantityRequiresQuantity(t *testing.T) {
	e := newServer(t)
	id := createCart(t, e)
	base := "/api/v1/carts/" + id

	do(t, e, http.MethodPost, base+"/items", `{"product_id":1}`)

	for name, body := range map[string]string{
		"missing field": `{}`,
		"empty body":    "",
		"null quantity": `{"quantity":null}`,
	} {
		t.Run(name, func(t *testing.T) {
			code, resp := do(t, e, http.MethodPut, base+"/items/1", body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "error", resp.Status)
		})
	}

	code, body := do(t, e, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, 1, body.Data.Items[0].Quantity)
}

func TestAddItemToUnknownSessionIsNotFound(t *testing.T) {
	e := newServer(t)

	code, _ := do(t, e, http.MethodPost, "/api/v1/carts/nope/items", `{"product_id":5}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMapErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid -> 400", app.ErrInvalidInput, http.StatusBadRequest},
		{"wrapped not found -> 404", fmt.Errorf("failed to get product 9: %w", app.ErrNotFound), http.StatusNotFound},
		{"out of stock -> 409", fmt.Errorf("product 5: %w", app.ErrOutOfStock), http.StatusConflict},
		{"unknown -> 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mapErr(tc.err))
		})
	}
}
