package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvad-hq/storefront-console/pkg/apiclient"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	v, err := apiclient.Decode([]byte(raw))
	require.NoError(t, err)
	return v
}

func TestFormatKey(t *testing.T) {
	cases := map[string]string{
		"productId":         "Product Id",
		"name":              "Name",
		"shippingAddressId": "Shipping Address Id",
		"SKU":               "S K U",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatKey(in), in)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "-", FormatValue(nil))
	assert.Equal(t, "", FormatValue(""))
	assert.Equal(t, "false", FormatValue(false))
	assert.Equal(t, "12.50", FormatValue(decode(t, "12.50")))
	assert.Equal(t, `{"a":1}`, FormatValue(decode(t, `{"a":1}`)))
}

func TestNewTable(t *testing.T) {
	cols := []Column{{Key: "productId", Label: "ID"}, {Key: "description", Label: "Description"}}

	view := NewTable(decode(t, `[{"productId":1,"description":null},{"productId":2}]`), cols)
	table, ok := view.(Table)
	require.True(t, ok, "expected Table, got %T", view)
	assert.Equal(t, "table", table.Template())
	assert.Equal(t, [][]string{{"1", "-"}, {"2", "-"}}, table.Rows)

	for _, raw := range []string{`[]`, `null`, `{"message":"x"}`} {
		notice, ok := NewTable(decode(t, raw), cols).(Notice)
		require.True(t, ok, raw)
		assert.Equal(t, "No data found", notice.Text)
	}
}

func TestNewCard(t *testing.T) {
	card, ok := NewCard(decode(t, `{"productId":3,"name":"Pen","isActive":true}`), "Product #3").(Card)
	require.True(t, ok)
	assert.Equal(t, "Product #3", card.Title)
	assert.Equal(t, []Field{
		{Label: "Product Id", Value: "3"},
		{Label: "Name", Value: "Pen"},
		{Label: "Is Active", Value: "true"},
	}, card.Fields)

	notice, ok := NewCard(nil, "Product #3").(Notice)
	require.True(t, ok)
	assert.Equal(t, "Item not found", notice.Text)
}

func TestNewResult(t *testing.T) {
	res := NewResult("Product Created", decode(t, `{"productId":5,"name":"Pen"}`)).(Result)
	assert.Equal(t, []Field{{Label: "productId", Value: "5"}, {Label: "name", Value: "Pen"}}, res.Fields)
	assert.Empty(t, res.Text)

	res = NewResult("Product Deleted", nil).(Result)
	assert.Equal(t, "Success", res.Text)

	res = NewResult("Bulk", decode(t, `[1,2]`)).(Result)
	assert.Equal(t, "[\n  1,\n  2\n]", res.Text)
}

func TestNewStockStatus(t *testing.T) {
	in := NewStockStatus("Product #4 Stock Status", decode(t, `{"inStock":true}`)).(Status)
	assert.Equal(t, "IN STOCK", in.Headline)
	assert.Equal(t, StyleSuccess, in.Style)

	out := NewStockStatus("Product #4 Stock Status", decode(t, `{"inStock":false}`)).(Status)
	assert.Equal(t, "OUT OF STOCK", out.Headline)
	assert.Equal(t, StyleError, out.Style)
	assert.Equal(t, "Product #4 Stock Status", out.Title)
}

func TestNewCount(t *testing.T) {
	st := NewCount("User #2 Order Count", decode(t, `{"count":3}`)).(Status)
	assert.Equal(t, "3", st.Headline)
	assert.Equal(t, "orders", st.Suffix)

	st = NewCount("User #2 Order Count", decode(t, `{}`)).(Status)
	assert.Equal(t, "-", st.Headline)
}
