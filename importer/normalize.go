// Package importer turns raw JSON or CSV input into validated custom
// products: parse, normalize, collision-check, and commit in one batch.
package importer

import (
	"fmt"
	"strings"

	"github.com/atripati/altetudegear/domain"
)

// slugify lowercases s, collapses every run of non-alphanumeric characters
// into a single hyphen, and trims leading/trailing hyphens.
func slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize fills the derived fields of a partial record deterministically
// before validation. positionIndex is the record's zero-based position in
// the batch and seeds generated slugs and ids. Normalization never invents
// price, sizes, colors, or inventory; those must come from the input or the
// record fails validation.
func Normalize(partial domain.PartialProduct, positionIndex int) domain.Product {
	name := strings.TrimSpace(partial.Name)

	slug := strings.TrimSpace(partial.Slug)
	if slug == "" {
		if name != "" {
			slug = slugify(name)
		} else {
			slug = fmt.Sprintf("product-%d", positionIndex+1)
		}
	}

	id := partial.ID
	if id == "" {
		id = fmt.Sprintf("custom-%s-%d", slug, positionIndex+1)
	}

	images := partial.Images
	if len(images) == 0 && partial.Image != "" {
		alt := name
		if alt == "" {
			alt = "Custom product"
		}
		images = []domain.ProductImage{{
			Src:     partial.Image,
			Alt:     alt + " image",
			Primary: true,
		}}
	}
	for i := range images {
		if images[i].Alt == "" {
			images[i].Alt = fmt.Sprintf("%s image %d", name, i+1)
		}
	}

	return domain.Product{
		ID:            id,
		Slug:          slug,
		Name:          partial.Name,
		Description:   partial.Description,
		Price:         partial.Price,
		OriginalPrice: partial.OriginalPrice,
		Category:      partial.Category,
		Collection:    partial.Collection,
		Tags:          partial.Tags,
		Sizes:         partial.Sizes,
		Colors:        partial.Colors,
		Inventory:     partial.Inventory,
		Images:        images,
		Features:      partial.Features,
		IsNew:         partial.IsNew,
		IsBestSeller:  partial.IsBestSeller,
	}
}
