package models

import (
	"database/sql/driver"
	"fmt"
)

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category is the kind of experience a package offers. Values outside the
// known set decode to CategoryUnknown and fall back to neutral styling.
type Category int

const (
	CategoryUnknown   Category = iota // unknown
	CategoryAdventure                 // adventure
	CategoryCultural                  // cultural
	CategoryLuxury                    // luxury
	CategoryFamily                    // family
)

var categoryColors = map[Category]string{
	CategoryAdventure: "terracotta",
	CategoryCultural:  "ocean",
	CategoryLuxury:    "sunset",
	CategoryFamily:    "forest",
}

func Categories() []Category {
	return []Category{CategoryAdventure, CategoryCultural, CategoryLuxury, CategoryFamily}
}

func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if c.String() == s {
			return c
		}
	}
	return CategoryUnknown
}

func (c Category) Known() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color is the theme color token used for the category.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return "gray"
}

func (c Category) BadgeClass() string {
	color, ok := categoryColors[c]
	if !ok {
		return "bg-gray-100 text-gray-600"
	}
	return fmt.Sprintf("bg-%s/10 text-%s", color, color)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

func (c *Category) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*c = ParseCategory(v)
	case []byte:
		*c = ParseCategory(string(v))
	case nil:
		*c = CategoryUnknown
	default:
		return fmt.Errorf("unsupported category value of type %T", value)
	}
	return nil
}

func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}
