package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atripati/altetudegear/domain"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Summit Pro Jacket", "summit-pro-jacket"},
		{"  City  Windbreaker!! ", "city-windbreaker"},
		{"Trail/Vest (2024)", "trail-vest-2024"},
		{"---", ""},
		{"Éclair", "clair"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}

func TestNormalizeDerivesSlugAndID(t *testing.T) {
	p := Normalize(domain.PartialProduct{Name: "Custom Shell Jacket"}, 0)
	assert.Equal(t, "custom-shell-jacket", p.Slug)
	assert.Equal(t, "custom-custom-shell-jacket-1", p.ID)
}

func TestNormalizeNamelessRecordGetsPositionalSlug(t *testing.T) {
	p := Normalize(domain.PartialProduct{}, 2)
	assert.Equal(t, "product-3", p.Slug)
	assert.Equal(t, "custom-product-3-3", p.ID)
}

func TestNormalizeKeepsProvidedSlugAndID(t *testing.T) {
	p := Normalize(domain.PartialProduct{
		ID:   "my-id",
		Slug: "my-slug",
		Name: "Whatever",
	}, 5)
	assert.Equal(t, "my-slug", p.Slug)
	assert.Equal(t, "my-id", p.ID)
}

func TestNormalizeSynthesizesImageFromLegacyField(t *testing.T) {
	p := Normalize(domain.PartialProduct{
		Name:  "Shell Jacket",
		Image: "https://example.com/shell.jpg",
	}, 0)
	require.Len(t, p.Images, 1)
	assert.Equal(t, "https://example.com/shell.jpg", p.Images[0].Src)
	assert.Equal(t, "Shell Jacket image", p.Images[0].Alt)
	assert.True(t, p.Images[0].Primary)

	// without a name the generated alt text falls back
	p = Normalize(domain.PartialProduct{Image: "https://example.com/x.jpg"}, 0)
	require.Len(t, p.Images, 1)
	assert.Equal(t, "Custom product image", p.Images[0].Alt)
}

func TestNormalizeFillsMissingAltText(t *testing.T) {
	p := Normalize(domain.PartialProduct{
		Name: "Shell Jacket",
		Images: []domain.ProductImage{
			{Src: "/a.jpg", Alt: "front"},
			{Src: "/b.jpg"},
		},
	}, 0)
	require.Len(t, p.Images, 2)
	assert.Equal(t, "front", p.Images[0].Alt)
	assert.Equal(t, "Shell Jacket image 2", p.Images[1].Alt)
}

func TestNormalizeNeverInventsRequiredData(t *testing.T) {
	p := Normalize(domain.PartialProduct{Name: "Bare"}, 0)
	assert.Zero(t, p.Price)
	assert.Empty(t, p.Sizes)
	assert.Empty(t, p.Colors)
	assert.Empty(t, p.Inventory)
	assert.False(t, domain.Validate(p).Valid)
}

func TestNormalizeRoundTripOfCompleteRecord(t *testing.T) {
	original := 300.0
	partial := domain.PartialProduct{
		ID:            "c1",
		Slug:          "shell-jacket",
		Name:          "Shell Jacket",
		Description:   "A breathable waterproof shell.",
		Price:         255,
		OriginalPrice: &original,
		Category:      "Jackets",
		Collection:    "Outdoor",
		Tags:          []string{"waterproof"},
		Sizes:         []string{"S", "M"},
		Colors:        []domain.ProductColor{{Name: "Ice", Value: "#cce5ff"}},
		Inventory:     []domain.InventoryEntry{{Size: "S", Color: "Ice", Stock: 6}},
		Images:        []domain.ProductImage{{Src: "/shell.jpg", Alt: "Shell Jacket front"}},
		Features:      []string{"3-layer fabric"},
		IsNew:         true,
	}

	p := Normalize(partial, 0)
	result := domain.Validate(p)
	require.True(t, result.Valid, "errors: %v", result.Errors)

	assert.Equal(t, partial.ID, p.ID)
	assert.Equal(t, partial.Slug, p.Slug)
	assert.Equal(t, partial.Name, p.Name)
	assert.Equal(t, partial.Description, p.Description)
	assert.Equal(t, partial.Price, p.Price)
	assert.Equal(t, partial.OriginalPrice, p.OriginalPrice)
	assert.Equal(t, partial.Tags, p.Tags)
	assert.Equal(t, partial.Sizes, p.Sizes)
	assert.Equal(t, partial.Colors, p.Colors)
	assert.Equal(t, partial.Inventory, p.Inventory)
	assert.Equal(t, partial.Images, p.Images)
	assert.Equal(t, partial.Features, p.Features)
	assert.True(t, p.IsNew)
	assert.False(t, p.IsBestSeller)
}
