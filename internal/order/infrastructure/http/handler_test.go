package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/rmaluf/storefront-orders/internal/catalog/domain"
	catalogmem "github.com/rmaluf/storefront-orders/internal/catalog/infrastructure/memory"
	customerdomain "github.com/rmaluf/storefront-orders/internal/customer/domain"
	customermem "github.com/rmaluf/storefront-orders/internal/customer/infrastructure/memory"
	"github.com/rmaluf/storefront-orders/internal/order/application"
	ordermem "github.com/rmaluf/storefront-orders/internal/order/infrastructure/memory"
)

type fakeIdem struct {
	seen map[string]bool
}

func (f *fakeIdem) Seen(ctx context.Context, key string) (bool, error) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	dup := f.seen[key]
	f.seen[key] = true
	return dup, nil
}

func newTestHandler(t *testing.T, idem IdempotencyChecker) *Handler {
	t.Helper()
	ctx := context.Background()

	customers := customermem.NewRepository()
	require.NoError(t, customers.Create(ctx, customerdomain.NewCustomer("c1", "Alice", "alice@example.com")))

	products := catalogmem.NewRepository()
	require.NoError(t, products.Create(ctx, catalogdomain.NewProduct("p1", "keyboard", 1000, 5)))
	require.NoError(t, products.Create(ctx, catalogdomain.NewProduct("p2", "mouse", 2000, 0)))

	svc := application.NewService(customers, products, ordermem.NewRepository())
	return NewHandler(slog.New(slog.DiscardHandler), svc, idem)
}

func doRequest(h *Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderHTTP_Success(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doRequest(h, http.MethodPost, "/",
		`{"customer_id":"c1","products":[{"product_id":"p1","quantity":3}]}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "c1", resp.CustomerID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1000), resp.Items[0].PriceCents)
	assert.Equal(t, int64(3000), resp.TotalCents)
}

func TestCreateOrderHTTP_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{
			name:   "customer missing",
			body:   `{"customer_id":"ghost","products":[{"product_id":"p1","quantity":1}]}`,
			status: http.StatusNotFound,
		},
		{
			name:   "product missing",
			body:   `{"customer_id":"c1","products":[{"product_id":"p9","quantity":1}]}`,
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "insufficient stock",
			body:   `{"customer_id":"c1","products":[{"product_id":"p2","quantity":1}]}`,
			status: http.StatusConflict,
		},
		{
			name:   "bad body",
			body:   `{`,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(t, nil)
			rec := doRequest(h, http.MethodPost, "/", tc.body, nil)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestCreateOrderHTTP_IdempotencyKey(t *testing.T) {
	h := newTestHandler(t, &fakeIdem{})
	body := `{"customer_id":"c1","products":[{"product_id":"p1","quantity":1}]}`
	header := map[string]string{"Idempotency-Key": "k-1"}

	rec := doRequest(h, http.MethodPost, "/", body, header)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(h, http.MethodPost, "/", body, header)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetOrderHTTP(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doRequest(h, http.MethodPost, "/",
		`{"customer_id":"c1","products":[{"product_id":"p1","quantity":2}]}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(h, http.MethodGet, "/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Items, fetched.Items)

	rec = doRequest(h, http.MethodGet, "/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
