package domain

import (
	"fmt"
	"strings"
)

// ValidationResult reports the outcome of validating a candidate product.
// Errors lists every violated invariant in field declaration order.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks a product against the catalog schema invariants. It is a
// pure function and accumulates all violations rather than stopping at the
// first, so callers see the complete defect list in one pass.
func Validate(p Product) ValidationResult {
	var errs []string

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "Name is required.")
	}
	if strings.TrimSpace(p.Slug) == "" {
		errs = append(errs, "Slug is required.")
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, "Description is required.")
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, "Category is required.")
	}
	if strings.TrimSpace(p.Collection) == "" {
		errs = append(errs, "Collection is required.")
	}

	if p.Price <= 0 {
		errs = append(errs, "Price must be greater than 0.")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		errs = append(errs, "Original price should be greater than or equal to price.")
	}

	if len(p.Sizes) == 0 {
		errs = append(errs, "At least one size is required.")
	}
	if len(p.Colors) == 0 {
		errs = append(errs, "At least one color option is required.")
	}

	if len(p.Inventory) == 0 {
		errs = append(errs, "Inventory entries are required.")
	} else {
		for i, entry := range p.Inventory {
			if entry.Size == "" {
				errs = append(errs, fmt.Sprintf("Inventory entry %d is missing a size.", i+1))
			}
			if entry.Color == "" {
				errs = append(errs, fmt.Sprintf("Inventory entry %d is missing a color.", i+1))
			}
			if entry.Stock < 0 {
				errs = append(errs, fmt.Sprintf("Inventory entry %d must have a non-negative integer stock.", i+1))
			}
		}
	}

	if len(p.Images) == 0 {
		errs = append(errs, "At least one image is required.")
	} else {
		for i, image := range p.Images {
			if image.Src == "" {
				errs = append(errs, fmt.Sprintf("Image %d is missing a source.", i+1))
			}
			if image.Alt == "" {
				errs = append(errs, fmt.Sprintf("Image %d is missing alt text.", i+1))
			}
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
