// Package text implements Text, a polymorphic typography component.
//
// A single entry point renders one of several structural elements (h1..h6,
// p, label, span) selected by Props.Variant. Size and color are shared by
// every variant; LabelFor is honored only by the label variant and ignored
// by the rest.
package text

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vcrobe/polytext/console"
	"github.com/vcrobe/polytext/runtime"
	"github.com/vcrobe/polytext/vdom"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// Props are the inputs of a Text.
type Props struct {
	Variant Variant `yaml:"variant" validate:"required,oneof=h1 h2 h3 h4 h5 h6 p label span"`
	Size    Size    `yaml:"size" validate:"required,oneof=sm md lg"`
	Color   Color   `yaml:"color,omitempty" validate:"omitempty,oneof=primary secondary"`

	// LabelFor associates a label with the element carrying this id.
	// Only the Label variant uses it.
	LabelFor string `yaml:"for,omitempty"`

	Children []*vdom.VNode `yaml:"-" validate:"-"`
}

// Validate checks the closed-set props without constructing a component.
func (p Props) Validate() error {
	if err := validate.Struct(p); err != nil {
		return translateValidation(err)
	}
	return nil
}

// Text is the component form of Props, usable with runtime.Renderer.RenderChild.
type Text struct {
	runtime.ComponentBase
	props Props
}

// Compile-time assertions for the runtime contracts Text satisfies.
var (
	_ runtime.Component   = (*Text)(nil)
	_ runtime.PropUpdater = (*Text)(nil)
)

// New validates p and returns a Text. Unsupported variants, sizes or colors
// are rejected here with an error wrapping ErrInvalidProps; no component is
// produced.
func New(p Props) (*Text, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Text{props: p}, nil
}

// MustNew is New for literal props known to be valid. It panics otherwise.
func MustNew(p Props) *Text {
	t, err := New(p)
	if err != nil {
		panic(fmt.Sprintf("text.MustNew: %v", err))
	}
	return t
}

// Props returns the props the component was constructed with.
func (t *Text) Props() Props {
	return t.props
}

// ApplyProps replaces the props when the renderer reuses this instance.
func (t *Text) ApplyProps(source runtime.Component) {
	if other, ok := source.(*Text); ok {
		t.props = other.props
	}
}

// Render implements runtime.Component.
func (t *Text) Render(r runtime.Renderer) *vdom.VNode {
	return Element(t.props)
}

// ClassName is the presentation class shared by all variants.
func ClassName(size Size, color Color) string {
	return "class-with-" + string(size) + "-" + string(color.Resolve())
}

// Element renders p. It is a pure function: the same props always yield an
// equal tree, and Children are placed in the result unchanged. Props are
// expected to have passed Validate; an unknown variant renders nothing.
func Element(p Props) *vdom.VNode {
	color := p.Color.Resolve()
	attrs := map[string]any{
		"class":      ClassName(p.Size, color),
		"data-size":  string(p.Size),
		"data-color": string(color),
	}

	switch {
	case p.Variant == Label:
		if p.LabelFor != "" {
			attrs["for"] = p.LabelFor
		}
		return vdom.NewVNode(string(Label), attrs, children(p.Children), "")
	case p.Variant.IsHeading(), p.Variant == Paragraph, p.Variant == Span:
		return vdom.NewVNode(string(p.Variant), attrs, children(p.Children), "")
	default:
		console.Warn("text: refusing to render unsupported variant ", string(p.Variant))
		return nil
	}
}

func children(in []*vdom.VNode) []*vdom.VNode {
	if len(in) == 0 {
		return nil
	}
	out := make([]*vdom.VNode, len(in))
	copy(out, in)
	return out
}
