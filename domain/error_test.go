package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "slug conflict",
			err:  NewSlugConflictError("summit-pro-jacket"),
			want: `Slug "summit-pro-jacket" is already in use.`,
		},
		{
			name: "id conflict",
			err:  NewIDConflictError("custom-tee-2"),
			want: `ID "custom-tee-2" is already in use.`,
		},
		{
			name: "parse",
			err:  NewParseError("CSV input is empty."),
			want: "CSV input is empty.",
		},
		{
			name: "not found",
			err:  NewProductNotFoundError("trail-vest"),
			want: "product not found: trail-vest",
		},
		{
			name: "invalid product",
			err:  NewInvalidProductError([]string{"Name is required.", "Slug is required."}),
			want: "invalid product: Name is required. Slug is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestErrorTypeHelpers(t *testing.T) {
	if !IsSlugConflictError(NewSlugConflictError("x")) {
		t.Fatalf("expected slug conflict check to match")
	}
	if !IsIDConflictError(NewIDConflictError("x")) {
		t.Fatalf("expected id conflict check to match")
	}
	if !IsParseError(NewParseError("x")) {
		t.Fatalf("expected parse error check to match")
	}
	if !IsProductNotFoundError(NewProductNotFoundError("x")) {
		t.Fatalf("expected not found check to match")
	}
	if !IsInvalidProductError(NewInvalidProductError(nil)) {
		t.Fatalf("expected invalid product check to match")
	}

	if IsSlugConflictError(NewIDConflictError("x")) {
		t.Fatalf("slug conflict check must not match id conflicts")
	}
	if IsParseError(errors.New("plain")) {
		t.Fatalf("parse error check must not match plain errors")
	}
}

func TestErrorHelpersMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("import row 3: %w", NewSlugConflictError("trail-vest"))

	if !IsSlugConflictError(wrapped) {
		t.Fatalf("expected wrapped slug conflict to match")
	}

	var sce *SlugConflictError
	if !errors.As(wrapped, &sce) {
		t.Fatalf("expected errors.As to unwrap slug conflict")
	}
	if sce.Slug != "trail-vest" {
		t.Fatalf("expected slug trail-vest, got %q", sce.Slug)
	}
}

func TestErrorsIsAcrossInstances(t *testing.T) {
	if !errors.Is(NewSlugConflictError("a"), &SlugConflictError{}) {
		t.Fatalf("expected errors.Is to match by type")
	}
	if errors.Is(NewSlugConflictError("a"), &IDConflictError{}) {
		t.Fatalf("errors.Is must not match across types")
	}
}
