package registry

import (
	"testing"

	"github.com/shopcanvas/builder-backend/internal/domain"
)

func TestPaletteOrderAndMembership(t *testing.T) {
	home := Palette(domain.DesignHomepage)
	if len(home) == 0 {
		t.Fatal("homepage palette is empty")
	}
	if home[0].Type != "Header" {
		t.Fatalf("homepage palette starts with %q, want Header", home[0].Type)
	}
	for _, e := range home {
		if !Allowed(domain.DesignHomepage, e.Type) {
			t.Fatalf("palette entry %q not allowed on its own design", e.Type)
		}
	}

	pdp := Palette(domain.DesignPDP)
	if len(pdp) == 0 {
		t.Fatal("pdp palette is empty")
	}
	found := false
	for _, e := range pdp {
		if e.Type == "AddToCart" {
			found = true
		}
	}
	if !found {
		t.Fatal("pdp palette missing AddToCart")
	}
}

func TestAllowedRejectsCrossDesignAndUnknown(t *testing.T) {
	if Allowed(domain.DesignHomepage, "AddToCart") {
		t.Fatal("AddToCart should not be allowed on homepage")
	}
	if Allowed(domain.DesignPDP, "SharkTank") {
		t.Fatal("SharkTank should not be allowed on pdp")
	}
	if Allowed(domain.DesignHomepage, "Nope") {
		t.Fatal("unknown type should not be allowed")
	}
}

func TestSchemaUnknownType(t *testing.T) {
	if _, ok := Schema("Nope"); ok {
		t.Fatal("unknown type should have no schema")
	}
	specs, ok := Schema("Spacer")
	if !ok || len(specs) == 0 {
		t.Fatal("Spacer should have a schema")
	}
}

func TestValidateProps(t *testing.T) {
	cases := []struct {
		name          string
		componentType string
		props         map[string]any
		wantErr       bool
	}{
		{"valid passthrough", "Header", map[string]any{"text": "Welcome", "showLogo": true}, false},
		{"undeclared keys pass", "Header", map[string]any{"custom": []any{1, 2}}, false},
		{"boolean as string rejected", "Header", map[string]any{"showLogo": "true"}, true},
		{"number as string rejected", "Spacer", map[string]any{"height": "40"}, true},
		{"numeric id reference accepted", "AddToCart", map[string]any{"productId": float64(123)}, false},
		{"enum outside values rejected", "VariantPicker", map[string]any{"style": "circle"}, true},
		{"enum inside values accepted", "VariantPicker", map[string]any{"style": "swatch"}, false},
		{"unknown type skips checks", "Nope", map[string]any{"anything": []any{}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateProps(tc.componentType, tc.props)
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
