package domain

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// DesignType selects which rendering surface consumes a layout and which
// component palette is valid for it.
type DesignType string

const (
	DesignHomepage DesignType = "homepage"
	DesignPDP      DesignType = "pdp"
)

func (d DesignType) Valid() bool {
	return d == DesignHomepage || d == DesignPDP
}

// ComponentInstance is one placed element in a layout: a type tag from
// the registry plus a free-form property bag. The bag is stored as-is;
// legal keys per type are described by the registry.
type ComponentInstance struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	Props map[string]any `json:"props,omitempty"`
}

// PropString reads a prop as a string, tolerating numeric values the
// editor occasionally writes for id fields.
func (c ComponentInstance) PropString(key string) string {
	v, ok := c.Props[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	case int:
		return fmt.Sprintf("%d", t)
	}
	return ""
}

// PropNumber reads a prop as a number with a default.
func (c ComponentInstance) PropNumber(key string, def float64) float64 {
	v, ok := c.Props[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	}
	return def
}

// MarshalComponents encodes an ordered component sequence for a JSON
// column.
func MarshalComponents(components []ComponentInstance) (datatypes.JSON, error) {
	raw, err := json.Marshal(components)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// UnmarshalComponents decodes a JSON column back into the ordered
// sequence. Null or empty columns decode to an empty slice.
func UnmarshalComponents(data datatypes.JSON) ([]ComponentInstance, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var out []ComponentInstance
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
