package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublishedProduct(t *testing.T) *Product {
	t.Helper()
	p, err := ReconstructProduct(7, "Japan", "japan-jp", "telna", ESIMTypeLocal,
		"Japan: NTT (5G)", "jp.png", true, []uint{1}, false, 0, 0, []uint{3},
		ProductStatusPublished, time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func TestNewProduct_Validation(t *testing.T) {
	_, err := NewProduct("", "japan-jp", "telna", ESIMTypeLocal)
	assert.ErrorContains(t, err, "title is required")

	_, err = NewProduct("Japan", "", "telna", ESIMTypeLocal)
	assert.ErrorContains(t, err, "slug is required")

	_, err = NewProduct("Japan", "japan-jp", "telna", ESIMType("planetary"))
	assert.ErrorContains(t, err, "invalid esim type")
}

func TestProduct_EnableVariantPricing(t *testing.T) {
	p, err := NewProduct("Japan", "japan-jp", "telna", ESIMTypeLocal)
	require.NoError(t, err)

	p.EnableVariantPricing([]uint{4})

	assert.True(t, p.VariantsEnabled())
	assert.Equal(t, []uint{4}, p.VariantTypeIDs())
	assert.False(t, p.BasePriceEnabled())
	assert.Zero(t, p.Inventory())
}

func TestProduct_EnableBasePricing(t *testing.T) {
	p, err := NewProduct("Japan", "japan-jp", "telna", ESIMTypeLocal)
	require.NoError(t, err)

	p.EnableBasePricing(12.5)

	assert.False(t, p.VariantsEnabled())
	assert.True(t, p.BasePriceEnabled())
	assert.Equal(t, 12.5, p.BasePriceUSD())
	assert.Equal(t, UnconstrainedInventory, p.Inventory())
}

func TestProduct_ApplySourceUpdate_NarrowFieldsOnly(t *testing.T) {
	p := newPublishedProduct(t)

	p.ApplySourceUpdate(SourceUpdate{
		CountryIDs: []uint{3, 9},
		Provider:   "airalo",
		ESIMType:   ESIMTypeRegional,
		Coverage:   "Japan: KDDI (LTE)",
		IconURL:    "jp-v2.png",
	})

	assert.Equal(t, []uint{3, 9}, p.CountryIDs())
	assert.Equal(t, "airalo", p.Provider())
	assert.Equal(t, ESIMTypeRegional, p.ESIMType())
	assert.Equal(t, "Japan: KDDI (LTE)", p.Coverage())
	assert.Equal(t, "jp-v2.png", p.IconURL())

	// Pricing, variants, inventory, and status survive untouched.
	assert.True(t, p.VariantsEnabled())
	assert.Equal(t, []uint{1}, p.VariantTypeIDs())
	assert.Zero(t, p.Inventory())
	assert.Equal(t, ProductStatusPublished, p.Status())
}

func TestESIMTypeFromSource(t *testing.T) {
	tests := []struct {
		raw  string
		want ESIMType
	}{
		{"local", ESIMTypeLocal},
		{"regional", ESIMTypeRegional},
		{"global", ESIMTypeGlobal},
		{"", ESIMTypeGlobal},
		{"continental", ESIMTypeGlobal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ESIMTypeFromSource(tt.raw), "raw=%q", tt.raw)
	}
}
