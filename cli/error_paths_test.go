package cli

import (
	"strings"
	"testing"

	"github.com/atripati/altetudegear/domain"
	"github.com/atripati/altetudegear/store"
)

func TestImportRequiresFile(t *testing.T) {
	defer resetCLI()
	catalog = store.New(store.DefaultBase(), store.NewMemoryStorage())

	if _, err := run("import", "--file", ""); err == nil {
		t.Fatalf("expected error when --file is missing")
	}
}

func TestImportUnknownExtensionNeedsFormat(t *testing.T) {
	defer resetCLI()
	catalog = store.New(store.DefaultBase(), store.NewMemoryStorage())

	path := writeFile(t, "products.txt", "{}")
	_, err := run("import", "--file", path, "--format", "")
	if err == nil || !strings.Contains(err.Error(), "format") {
		t.Fatalf("expected format inference error, got %v", err)
	}
}

func TestImportExplicitFormatOverridesExtension(t *testing.T) {
	defer resetCLI()
	catalog = store.New(store.DefaultBase(), store.NewMemoryStorage())

	path := writeFile(t, "products.txt", "name,price\nX,10\n")
	out, err := run("import", "--file", path, "--format", "csv")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, "Row 1:") {
		t.Fatalf("expected row errors from CSV parsing, got %q", out)
	}
}

func TestImportMalformedJSONFailsWholeAttempt(t *testing.T) {
	defer resetCLI()
	catalog = store.New(store.DefaultBase(), store.NewMemoryStorage())

	path := writeFile(t, "products.json", `[{"name": "oops"`)
	_, err := run("import", "--file", path, "--format", "json")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !domain.IsParseError(err) {
		t.Fatalf("expected a ParseError, got %T", err)
	}
	if len(catalog.Custom()) != 0 {
		t.Fatalf("no partial results should be written")
	}
}

func TestAddRequiresFile(t *testing.T) {
	defer resetCLI()
	catalog = store.New(store.DefaultBase(), store.NewMemoryStorage())

	if _, err := run("add", "--file", ""); err == nil {
		t.Fatalf("expected error when --file is missing")
	}
}

func TestAddRejectsInvalidProduct(t *testing.T) {
	defer resetCLI()
	catalog = store.New(store.DefaultBase(), store.NewMemoryStorage())

	path := writeFile(t, "product.json", `{"name": "Incomplete"}`)
	_, err := run("add", "--file", path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !domain.IsInvalidProductError(err) {
		t.Fatalf("expected InvalidProductError, got %T", err)
	}
}

func TestAddGeneratesIDWhenAbsent(t *testing.T) {
	defer resetCLI()
	catalog = store.New(store.DefaultBase(), store.NewMemoryStorage())

	path := writeFile(t, "product.json", `{
		"slug": "trail-vest",
		"name": "Trail Vest",
		"description": "Lightweight running vest.",
		"price": 120,
		"category": "Vests",
		"collection": "Training",
		"sizes": ["S"],
		"colors": [{"name": "Red", "value": "#ff0000"}],
		"inventory": [{"size": "S", "color": "Red", "stock": 3}],
		"images": [{"src": "/vest.jpg", "alt": "Trail Vest"}]
	}`)
	if _, err := run("add", "--file", path); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	p, ok := catalog.BySlug("trail-vest")
	if !ok {
		t.Fatalf("expected product to be stored")
	}
	if !strings.HasPrefix(p.ID, "custom-") {
		t.Fatalf("expected generated custom id, got %q", p.ID)
	}
}
