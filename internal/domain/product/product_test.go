//go:build unit

package product_test

import (
	"testing"

	"plugin-storefront/internal/domain/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abracadabra() product.Product {
	return product.Product{
		ID:       "abracadabra",
		Name:     "Abracadabra",
		Price:    decimal.RequireFromString("49.99"),
		Currency: "USD",
	}
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *product.Product)
		wantErr bool
	}{
		{name: "valid", mutate: func(*product.Product) {}},
		{name: "missing id", mutate: func(p *product.Product) { p.ID = "" }, wantErr: true},
		{name: "missing name", mutate: func(p *product.Product) { p.Name = "" }, wantErr: true},
		{name: "bad currency", mutate: func(p *product.Product) { p.Currency = "US" }, wantErr: true},
		{name: "zero price", mutate: func(p *product.Product) { p.Price = decimal.Zero }, wantErr: true},
		{name: "negative price", mutate: func(p *product.Product) { p.Price = decimal.NewFromInt(-1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := abracadabra()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, product.ErrInvalidProduct)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProduct_DiscountedPrice(t *testing.T) {
	p := abracadabra()

	tests := []struct {
		percent int
		want    string
	}{
		{percent: 0, want: "49.99"},
		{percent: 20, want: "39.99"},
		{percent: 25, want: "37.49"},
		{percent: 100, want: "0"},
	}
	for _, tt := range tests {
		got, err := p.DiscountedPrice(tt.percent)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "percent %d: got %s", tt.percent, got)
	}

	_, err := p.DiscountedPrice(101)
	assert.ErrorIs(t, err, product.ErrInvalidDiscount)
	_, err = p.DiscountedPrice(-1)
	assert.ErrorIs(t, err, product.ErrInvalidDiscount)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(3999), product.MinorUnits(decimal.RequireFromString("39.99")))
	assert.Equal(t, int64(5000), product.MinorUnits(decimal.NewFromInt(50)))
	assert.Equal(t, int64(1), product.MinorUnits(decimal.RequireFromString("0.005")))
}

func TestCatalog(t *testing.T) {
	foam := product.Product{ID: "foam", Name: "Foam", Price: decimal.RequireFromString("29.00"), Currency: "USD"}

	catalog, err := product.NewCatalog(foam, abracadabra())
	require.NoError(t, err)

	got, ok := catalog.Lookup("foam")
	require.True(t, ok)
	assert.Equal(t, "Foam", got.Name)

	_, ok = catalog.Lookup("missing")
	assert.False(t, ok)

	products := catalog.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "abracadabra", products[0].ID)

	_, err = product.NewCatalog(foam, foam)
	assert.ErrorIs(t, err, product.ErrDuplicateProduct)
}
