package forms

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalInteger(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *int64
		wantErr bool
	}{
		{name: "blank", raw: "", want: nil},
		{name: "whitespace", raw: "   ", want: nil},
		{name: "padded", raw: " 42 ", want: ptr(int64(42))},
		{name: "negative", raw: "-3", want: ptr(int64(-3))},
		{name: "decimal", raw: "4.5", wantErr: true},
		{name: "letters", raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptionalInteger(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotANumber)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalNumber(t *testing.T) {
	got, err := ParseOptionalNumber("19.99")
	require.NoError(t, err)
	assert.InDelta(t, 19.99, *got, 1e-9)

	got, err = ParseOptionalNumber("")
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, raw := range []string{"NaN", "Inf", "-Infinity", "12abc"} {
		_, err := ParseOptionalNumber(raw)
		assert.ErrorIs(t, err, ErrNotANumber, raw)
	}
}

func TestParseRequiredReportsFieldName(t *testing.T) {
	_, err := ParseRequiredInteger("", "Category ID")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Category ID is required", verr.Error())
	assert.Equal(t, "Category ID", verr.Field)

	_, err = ParseRequiredNumber("abc", "Price")
	require.Error(t, err)
	assert.Equal(t, "Price is required", err.Error())

	n, err := ParseRequiredInteger("7", "Stock")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	f, err := ParseRequiredNumber("0", "Price")
	require.NoError(t, err)
	assert.Zero(t, f)
}

func TestOptionalInteger(t *testing.T) {
	src := Values{"ship": "", "bill": "12", "bad": "x1"}

	v, err := OptionalInteger(src, "ship", "Shipping Address ID")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = OptionalInteger(src, "bill", "Billing Address ID")
	require.NoError(t, err)
	assert.Equal(t, int64(12), v)

	_, err = OptionalInteger(src, "bad", "Billing Address ID")
	assert.EqualError(t, err, "Billing Address ID must be a whole number")
}

func TestSourceHelpers(t *testing.T) {
	var src Source = url.Values{"name": {"  Pen  "}, "isActive": {"true"}, "other": {"TRUE"}}

	assert.Equal(t, "Pen", Text(src, "name"))
	assert.True(t, Flag(src, "isActive"))
	assert.False(t, Flag(src, "other"))
	assert.False(t, Flag(src, "missing"))
	assert.False(t, src.Has("missing"))
}

func ptr[T any](v T) *T { return &v }
