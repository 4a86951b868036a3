// Package domain defines core business types for the catalog system.
package domain

// ProductColor is a selectable color option on a product. Value holds the
// display representation, typically a hex string.
type ProductColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductImage is one entry in a product's image gallery.
type ProductImage struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Primary bool   `json:"primary,omitempty"`
}

// InventoryEntry tracks stock for one size/color combination.
type InventoryEntry struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

// Product is a catalog entry. ID and Slug are unique across the merged
// catalog; Slug is the stable public key and is preferred for lookups.
type Product struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         float64          `json:"price"`
	OriginalPrice *float64         `json:"originalPrice,omitempty"`
	Category      string           `json:"category"`
	Collection    string           `json:"collection"`
	Tags          []string         `json:"tags,omitempty"`
	Sizes         []string         `json:"sizes"`
	Colors        []ProductColor   `json:"colors"`
	Inventory     []InventoryEntry `json:"inventory"`
	Images        []ProductImage   `json:"images"`
	Features      []string         `json:"features"`
	IsNew         bool             `json:"isNew,omitempty"`
	IsBestSeller  bool             `json:"isBestSeller,omitempty"`
}

// PartialProduct is a candidate record on its way into the import pipeline.
// Every field is optional; the normalizer fills derived fields and the
// validator decides what is actually missing. Image carries the legacy
// single-image column some inputs still use.
type PartialProduct struct {
	ID            string           `json:"id,omitempty"`
	Slug          string           `json:"slug,omitempty"`
	Name          string           `json:"name,omitempty"`
	Description   string           `json:"description,omitempty"`
	Price         float64          `json:"price,omitempty"`
	OriginalPrice *float64         `json:"originalPrice,omitempty"`
	Image         string           `json:"image,omitempty"`
	Images        []ProductImage   `json:"images,omitempty"`
	Category      string           `json:"category,omitempty"`
	Collection    string           `json:"collection,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	Sizes         []string         `json:"sizes,omitempty"`
	Colors        []ProductColor   `json:"colors,omitempty"`
	Inventory     []InventoryEntry `json:"inventory,omitempty"`
	Features      []string         `json:"features,omitempty"`
	IsNew         bool             `json:"isNew,omitempty"`
	IsBestSeller  bool             `json:"isBestSeller,omitempty"`
}
