package text

import (
	"strings"
)

// Variant selects the structural element a Text renders as.
type Variant string

const (
	H1        Variant = "h1"
	H2        Variant = "h2"
	H3        Variant = "h3"
	H4        Variant = "h4"
	H5        Variant = "h5"
	H6        Variant = "h6"
	Paragraph Variant = "p"
	Label     Variant = "label"
	Span      Variant = "span"
)

var variants = []Variant{H1, H2, H3, H4, H5, H6, Paragraph, Label, Span}

var variantAliases = map[string]Variant{
	"heading":   H1,
	"paragraph": Paragraph,
}

// Variants returns every supported variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	for _, known := range variants {
		if v == known {
			return true
		}
	}
	return false
}

// IsHeading reports whether v is one of h1..h6.
func (v Variant) IsHeading() bool {
	switch v {
	case H1, H2, H3, H4, H5, H6:
		return true
	}
	return false
}

// ParseVariant converts a tag name or semantic alias ("heading",
// "paragraph") into a Variant.
func ParseVariant(s string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := variantAliases[key]; ok {
		return alias, nil
	}
	if v := Variant(key); v.Valid() {
		return v, nil
	}
	return "", newPropError("variant", s, variantNames())
}

// Size selects the relative visual scale.
type Size string

const (
	Small  Size = "sm"
	Medium Size = "md"
	Large  Size = "lg"
)

var sizes = []Size{Small, Medium, Large}

var sizeAliases = map[string]Size{
	"small":  Small,
	"medium": Medium,
	"large":  Large,
}

// Sizes returns every supported size from smallest to largest.
func Sizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes)
	return out
}

// Valid reports whether s is one of the supported sizes.
func (s Size) Valid() bool {
	return s == Small || s == Medium || s == Large
}

// ParseSize converts "sm"/"md"/"lg" or their long forms into a Size.
func ParseSize(s string) (Size, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := sizeAliases[key]; ok {
		return alias, nil
	}
	if size := Size(key); size.Valid() {
		return size, nil
	}
	return "", newPropError("size", s, []string{"sm", "md", "lg"})
}

// Color selects the semantic color.
type Color string

const (
	Primary   Color = "primary"
	Secondary Color = "secondary"
)

// DefaultColor is used when a Text is constructed without a color.
const DefaultColor = Primary

// Valid reports whether c is a supported color. The zero value is valid
// and resolves to DefaultColor.
func (c Color) Valid() bool {
	return c == "" || c == Primary || c == Secondary
}

// Resolve returns c, or DefaultColor when c is empty.
func (c Color) Resolve() Color {
	if c == "" {
		return DefaultColor
	}
	return c
}

// ParseColor converts a color name into a Color. An empty string yields
// the zero Color, which resolves to DefaultColor.
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c := Color(key); c.Valid() {
		return c, nil
	}
	return "", newPropError("color", s, []string{string(Primary), string(Secondary)})
}

func variantNames() []string {
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, string(v))
	}
	return names
}
