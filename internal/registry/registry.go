// Package registry holds the closed catalog of component types the
// builder can place, per design surface, and the editable property
// schema of each type. It is a pure lookup table: schemas drive the
// editor's forms and the save-time checks, nothing here touches storage.
package registry

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/shopcanvas/builder-backend/internal/domain"
)

//go:embed palette.yaml
var paletteYAML []byte

type PropKind string

const (
	KindString        PropKind = "string"
	KindNumber        PropKind = "number"
	KindBoolean       PropKind = "boolean"
	KindEnum          PropKind = "enum"
	KindProductRef    PropKind = "productRef"
	KindCollectionRef PropKind = "collectionRef"
)

type PropSpec struct {
	Key     string   `yaml:"key" json:"key"`
	Kind    PropKind `yaml:"kind" json:"kind"`
	Values  []string `yaml:"values,omitempty" json:"values,omitempty"`
	Default any      `yaml:"default,omitempty" json:"default,omitempty"`
}

type PaletteEntry struct {
	Type  string `yaml:"type" json:"type"`
	Label string `yaml:"label" json:"label"`
}

type catalogFile struct {
	Designs    map[string][]PaletteEntry `yaml:"designs"`
	Components map[string]struct {
		Props []PropSpec `yaml:"props"`
	} `yaml:"components"`
}

var (
	palettes map[domain.DesignType][]PaletteEntry
	schemas  map[string][]PropSpec
	allowed  map[domain.DesignType]map[string]bool
)

func init() {
	var file catalogFile
	if err := yaml.Unmarshal(paletteYAML, &file); err != nil {
		panic(fmt.Sprintf("registry: bad embedded palette: %v", err))
	}
	palettes = make(map[domain.DesignType][]PaletteEntry, len(file.Designs))
	allowed = make(map[domain.DesignType]map[string]bool, len(file.Designs))
	for design, entries := range file.Designs {
		d := domain.DesignType(design)
		palettes[d] = entries
		set := make(map[string]bool, len(entries))
		for _, e := range entries {
			set[e.Type] = true
		}
		allowed[d] = set
	}
	schemas = make(map[string][]PropSpec, len(file.Components))
	for name, c := range file.Components {
		schemas[name] = c.Props
	}
}

// Palette returns the ordered component palette for a design surface.
func Palette(design domain.DesignType) []PaletteEntry {
	return palettes[design]
}

// Schema returns the editable property specs for a component type.
// Unknown types have no schema; the editor shows no editable properties
// and save-time checks skip the prop pass.
func Schema(componentType string) ([]PropSpec, bool) {
	s, ok := schemas[componentType]
	return s, ok
}

// Allowed reports whether a component type belongs to the palette of the
// given design surface.
func Allowed(design domain.DesignType, componentType string) bool {
	return allowed[design][componentType]
}

// ValidateProps type-checks the declared keys of a component's property
// bag against its schema. Undeclared keys pass through untouched; the
// bag stays an open map.
func ValidateProps(componentType string, props map[string]any) error {
	specs, ok := schemas[componentType]
	if !ok {
		return nil
	}
	for _, spec := range specs {
		v, present := props[spec.Key]
		if !present || v == nil {
			continue
		}
		if err := checkKind(spec, v); err != nil {
			return fmt.Errorf("%s.%s: %w", componentType, spec.Key, err)
		}
	}
	return nil
}

func checkKind(spec PropSpec, v any) error {
	switch spec.Kind {
	case KindString, KindProductRef, KindCollectionRef:
		switch v.(type) {
		case string, float64, int:
			// id references tolerate numeric values the editor emits
			return nil
		}
		return fmt.Errorf("expected string, got %T", v)
	case KindNumber:
		switch v.(type) {
		case float64, int:
			return nil
		}
		return fmt.Errorf("expected number, got %T", v)
	case KindBoolean:
		if _, ok := v.(bool); ok {
			return nil
		}
		return fmt.Errorf("expected boolean, got %T", v)
	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected one of %v, got %T", spec.Values, v)
		}
		for _, allowed := range spec.Values {
			if s == allowed {
				return nil
			}
		}
		return fmt.Errorf("expected one of %v, got %q", spec.Values, s)
	}
	return nil
}
