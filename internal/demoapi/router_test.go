package demoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvad-hq/storefront-console/pkg/apiclient"
)

func newTestAPI(t *testing.T) (*apiclient.Client, string) {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewStore(), nil))
	t.Cleanup(srv.Close)
	return apiclient.NewClient(nil), srv.URL
}

func call(t *testing.T, c *apiclient.Client, base, method, path string, payload any) (any, error) {
	t.Helper()
	return c.Call(context.Background(), base, method, path, payload)
}

func field(t *testing.T, v any, key string) any {
	t.Helper()
	rec, ok := v.(*apiclient.Record)
	require.True(t, ok, "expected record, got %T", v)
	got, ok := rec.Get(key)
	require.True(t, ok, "missing key %q", key)
	return got
}

func TestProductLifecycle(t *testing.T) {
	c, base := newTestAPI(t)

	created, err := call(t, c, base, http.MethodPost, "/api/products", apiclient.NewRecord().
		Set("categoryId", 2).
		Set("name", "Pen").
		Set("description", "Blue").
		Set("price", 1.5).
		Set("stock", 0).
		Set("sku", "PEN-1").
		Set("isActive", true))
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), field(t, created, "productId"))
	assert.Equal(t, "productId", created.(*apiclient.Record).Keys()[0])

	stock, err := call(t, c, base, http.MethodGet, "/api/products/1/stock", nil)
	require.NoError(t, err)
	assert.Equal(t, false, field(t, stock, "inStock"))

	msg, err := call(t, c, base, http.MethodPut, "/api/products/1/stock", apiclient.NewRecord().Set("quantity", 7))
	require.NoError(t, err)
	assert.Equal(t, "Stock updated successfully", field(t, msg, "message"))

	stock, err = call(t, c, base, http.MethodGet, "/api/products/1/stock", nil)
	require.NoError(t, err)
	assert.Equal(t, true, field(t, stock, "inStock"))

	byCategory, err := call(t, c, base, http.MethodGet, "/api/products/category/2", nil)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	msg, err = call(t, c, base, http.MethodDelete, "/api/products/1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Product deleted successfully", field(t, msg, "message"))

	_, err = call(t, c, base, http.MethodGet, "/api/products/1", nil)
	var reqErr *apiclient.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "HTTP 404: Product not found", reqErr.Error())
}

func TestValidationFailuresAreTextBodies(t *testing.T) {
	c, base := newTestAPI(t)

	tests := []struct {
		name    string
		path    string
		payload *apiclient.Record
		want    string
	}{
		{
			name:    "negative price",
			path:    "/api/products",
			payload: apiclient.NewRecord().Set("categoryId", 1).Set("name", "X").Set("price", -1).Set("stock", 1),
			want:    "HTTP 400: Product price must be non-negative",
		},
		{
			name:    "order without user",
			path:    "/api/orders",
			payload: apiclient.NewRecord().Set("totalAmount", 10),
			want:    "HTTP 400: Order must have a user ID",
		},
		{
			name:    "blank category",
			path:    "/api/categories",
			payload: apiclient.NewRecord().Set("name", " "),
			want:    "HTTP 400: Category name cannot be empty",
		},
		{
			name:    "bad email",
			path:    "/api/users",
			payload: apiclient.NewRecord().Set("email", "not-an-email"),
			want:    "HTTP 400: Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, c, base, http.MethodPost, tt.path, tt.payload)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestOrdersByUserAndStatus(t *testing.T) {
	c, base := newTestAPI(t)

	for _, number := range []string{"ORD-1", "ORD-2"} {
		_, err := call(t, c, base, http.MethodPost, "/api/orders", apiclient.NewRecord().
			Set("userId", 4).
			Set("orderNumber", number).
			Set("status", "").
			Set("totalAmount", 12.5).
			Set("shippingAddressId", nil))
		require.NoError(t, err)
	}

	count, err := call(t, c, base, http.MethodGet, "/api/orders/user/4/count", nil)
	require.NoError(t, err)
	assert.Equal(t, json.Number("2"), field(t, count, "count"))

	_, err = call(t, c, base, http.MethodPut, "/api/orders/2/status", apiclient.NewRecord().Set("status", "SHIPPED"))
	require.NoError(t, err)

	order, err := call(t, c, base, http.MethodGet, "/api/orders/2", nil)
	require.NoError(t, err)
	assert.Equal(t, "SHIPPED", field(t, order, "status"))
	assert.NotNil(t, field(t, order, "shippedDate"))
	assert.Nil(t, field(t, order, "shippingAddressId"))

	first, err := call(t, c, base, http.MethodGet, "/api/orders/1", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultOrderStatus, field(t, first, "status"))
}

func TestUserByEmail(t *testing.T) {
	c, base := newTestAPI(t)

	user := apiclient.NewRecord().
		Set("email", "ada@example.com").
		Set("passwordHash", "x").
		Set("firstName", "Ada").
		Set("lastName", "Lovelace").
		Set("role", "ADMIN")
	_, err := call(t, c, base, http.MethodPost, "/api/users", user)
	require.NoError(t, err)

	_, err = call(t, c, base, http.MethodPost, "/api/users", user)
	require.Error(t, err)
	assert.Equal(t, "HTTP 400: Email already exists", err.Error())

	found, err := call(t, c, base, http.MethodGet, "/api/users/email/ada@example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", field(t, found, "firstName"))
}

func TestInvalidIDAndBody(t *testing.T) {
	srv := httptest.NewServer(NewRouter(nil, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/categories/abc")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	c := apiclient.NewClient(nil)
	_, err = c.Request(context.Background(), http.MethodPost, srv.URL+"/api/categories", "{")
	require.Error(t, err)
	assert.Equal(t, "HTTP 400: "+badBodyMessage, err.Error())
}

func TestSeedPopulatesCatalogue(t *testing.T) {
	store := NewStore()
	store.Seed()

	assert.Len(t, store.categories.list(nil), 2)
	assert.Len(t, store.products.list(nil), 2)
	assert.Equal(t, 1, store.orders.count(func(Order) bool { return true }))
}
