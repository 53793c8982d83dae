package operations

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

func build(t *testing.T, id string, src forms.Values) (Request, error) {
	t.Helper()
	op, err := Default().Lookup(id)
	require.NoError(t, err)
	return op.Build(src)
}

func payloadJSON(t *testing.T, req Request) string {
	t.Helper()
	raw, err := json.Marshal(req.Payload)
	require.NoError(t, err)
	return string(raw)
}

func TestDefaultRegistryLayout(t *testing.T) {
	reg := Default()
	assert.Equal(t, []Entity{Products, Orders, Categories, Users}, reg.Entities())
	assert.Len(t, reg.ForEntity(Products), 8)
	assert.Len(t, reg.ForEntity(Orders), 8)
	assert.Len(t, reg.ForEntity(Categories), 5)
	assert.Len(t, reg.ForEntity(Users), 6)

	for _, e := range reg.Entities() {
		for _, op := range reg.ForEntity(e) {
			assert.Equal(t, e.Region(), op.Region(), op.ID)
		}
	}

	op, err := reg.Lookup("  PRODUCTS.CREATE ")
	require.NoError(t, err)
	assert.Equal(t, "products.create", op.ID)
	assert.True(t, op.Mutating())

	_, err = reg.Lookup("products.explode")
	assert.True(t, errors.Is(err, ErrUnknownOperation))
}

func TestCreateProductBuildsOrderedPayload(t *testing.T) {
	req, err := build(t, "products.create", forms.Values{
		"categoryId":  "2",
		"name":        " Pen ",
		"description": "",
		"price":       "1.5",
		"stock":       "10",
		"sku":         "PEN-1",
		"isActive":    "true",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/products", req.Path)
	assert.Equal(t, `{"categoryId":2,"name":"Pen","description":"","price":1.5,"stock":10,"sku":"PEN-1","isActive":true}`, payloadJSON(t, req))
}

func TestCreateProductValidationOrder(t *testing.T) {
	tests := []struct {
		name string
		src  forms.Values
		want string
	}{
		{"missing category", forms.Values{"price": "1", "stock": "1", "name": "x", "sku": "y"}, "Category ID is required"},
		{"bad price", forms.Values{"categoryId": "1", "price": "cheap", "stock": "1", "name": "x", "sku": "y"}, "Price is required"},
		{"missing stock", forms.Values{"categoryId": "1", "price": "1"}, "Stock is required"},
		{"missing name", forms.Values{"categoryId": "1", "price": "1", "stock": "1", "sku": "y"}, "Product name and SKU are required"},
		{"blank sku", forms.Values{"categoryId": "1", "price": "1", "stock": "1", "name": "x", "sku": "  "}, "Product name and SKU are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(t, "products.create", tt.src)
			var verr *forms.ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Equal(t, tt.want, verr.Error())
		})
	}
}

func TestUpdateAndDeleteTargetParsedID(t *testing.T) {
	_, err := build(t, "products.update", forms.Values{"categoryId": "1"})
	assert.EqualError(t, err, "Product ID is required")

	req, err := build(t, "categories.update", forms.Values{"id": " 7 ", "name": "Books"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/categories/7", req.Path)
	assert.Equal(t, `{"name":"Books","description":""}`, payloadJSON(t, req))

	req, err = build(t, "users.delete", forms.Values{"id": "3"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/users/3", req.Path)
	assert.Nil(t, req.Payload)

	_, err = build(t, "orders.delete", forms.Values{"id": "x"})
	assert.EqualError(t, err, "Order ID is required")
}

func TestOrderOptionalAddressesAreNull(t *testing.T) {
	req, err := build(t, "orders.create", forms.Values{
		"userId":           "4",
		"orderNumber":      "ORD-1",
		"status":           "PENDING",
		"totalAmount":      "99.90",
		"billingAddressId": "12",
	})
	require.NoError(t, err)
	assert.Equal(t,
		`{"userId":4,"orderNumber":"ORD-1","status":"PENDING","totalAmount":99.9,"shippingAddressId":null,"billingAddressId":12,"notes":""}`,
		payloadJSON(t, req))

	_, err = build(t, "orders.create", forms.Values{"userId": "4", "totalAmount": "1"})
	assert.EqualError(t, err, "Order number and status are required")

	_, err = build(t, "orders.create", forms.Values{"userId": "4", "totalAmount": "1", "shippingAddressId": "home"})
	assert.EqualError(t, err, "Shipping Address ID must be a whole number")
}

func TestSecondaryWrites(t *testing.T) {
	req, err := build(t, "products.updateStock", forms.Values{"id": "5", "quantity": "-2"})
	require.NoError(t, err)
	assert.Equal(t, "/api/products/5/stock", req.Path)
	assert.Equal(t, `{"quantity":-2}`, payloadJSON(t, req))

	req, err = build(t, "orders.updateStatus", forms.Values{"id": "8", "status": "SHIPPED"})
	require.NoError(t, err)
	assert.Equal(t, "/api/orders/8/status", req.Path)
	assert.Equal(t, `{"status":"SHIPPED"}`, payloadJSON(t, req))

	_, err = build(t, "orders.updateStatus", forms.Values{"id": "8"})
	assert.EqualError(t, err, "Order status is required")
}

func TestUserPayloadRequiresIdentity(t *testing.T) {
	_, err := build(t, "users.create", forms.Values{"email": "a@b.c", "passwordHash": "h", "firstName": "A", "lastName": "B"})
	assert.EqualError(t, err, "Email, password, first name, last name, and role are required")

	req, err := build(t, "users.create", forms.Values{
		"email": "a@b.c", "passwordHash": "h", "firstName": "A", "lastName": "B", "role": "ADMIN", "isActive": "false",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"email":"a@b.c","passwordHash":"h","firstName":"A","lastName":"B","phone":"","role":"ADMIN","isActive":false}`, payloadJSON(t, req))
}

func TestLookupsPromptAndEscape(t *testing.T) {
	prompts := map[string]string{
		"products.get":        "Please enter a Product ID",
		"products.byCategory": "Please enter a Category ID",
		"products.stock":      "Please enter a Product ID",
		"orders.get":          "Please enter an Order ID",
		"orders.byUser":       "Please enter a User ID",
		"orders.userCount":    "Please enter a User ID",
		"categories.get":      "Please enter a Category ID",
		"users.get":           "Please enter a User ID",
		"users.byEmail":       "Please enter an email address",
	}
	for id, want := range prompts {
		_, err := build(t, id, forms.Values{})
		assert.EqualError(t, err, want, id)
	}

	req, err := build(t, "users.byEmail", forms.Values{"email": "jo smith@shop.test"})
	require.NoError(t, err)
	assert.Equal(t, "/api/users/email/jo%20smith@shop.test", req.Path)
	assert.Equal(t, "jo smith@shop.test", req.Subject)

	req, err = build(t, "orders.userCount", forms.Values{"userId": "2"})
	require.NoError(t, err)
	assert.Equal(t, "/api/orders/user/2/count", req.Path)
}

func TestPresenters(t *testing.T) {
	reg := Default()

	op, _ := reg.Lookup("products.stock")
	view := op.Present(Request{Subject: "4"}, nil)
	assert.IsType(t, render.Notice{}, view)

	op, _ = reg.Lookup("orders.get")
	card, ok := op.Present(Request{Subject: "9"}, nil).(render.Notice)
	require.True(t, ok)
	assert.Equal(t, "Item not found", card.Text)

	op, _ = reg.Lookup("categories.delete")
	res, ok := op.Present(Request{}, nil).(render.Result)
	require.True(t, ok)
	assert.Equal(t, "Category Deleted", res.Title)
	assert.Equal(t, "Success", res.Text)
}
