package text

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/polytext/runtime"
	"github.com/vcrobe/polytext/vdom"
)

// Specimen is one entry of a specimen file. Variant, size and color accept
// the same aliases as the Parse functions.
type Specimen struct {
	Variant  string `yaml:"variant"`
	Size     string `yaml:"size"`
	Color    string `yaml:"color,omitempty"`
	LabelFor string `yaml:"for,omitempty"`
	Text     string `yaml:"text"`
}

type specimenFile struct {
	Specimens []Specimen `yaml:"specimens"`
}

// Props converts the specimen into validated-ready Props.
func (s Specimen) Props() (Props, error) {
	variant, err := ParseVariant(s.Variant)
	if err != nil {
		return Props{}, err
	}
	size, err := ParseSize(s.Size)
	if err != nil {
		return Props{}, err
	}
	color, err := ParseColor(s.Color)
	if err != nil {
		return Props{}, err
	}
	return Props{
		Variant:  variant,
		Size:     size,
		Color:    color,
		LabelFor: s.LabelFor,
		Children: vdom.Texts(s.Text),
	}, nil
}

// LoadSpecimens decodes a YAML specimen file and constructs one Text per
// entry. Unknown keys are rejected.
func LoadSpecimens(r io.Reader) ([]*Text, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file specimenFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode specimens: %w", err)
	}

	out := make([]*Text, 0, len(file.Specimens))
	for i, s := range file.Specimens {
		props, err := s.Props()
		if err != nil {
			return nil, fmt.Errorf("specimen %d: %w", i, err)
		}
		t, err := New(props)
		if err != nil {
			return nil, fmt.Errorf("specimen %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Sheet lays out a list of Text components for side-by-side comparison.
type Sheet struct {
	runtime.ComponentBase
	Items []*Text
}

// Render implements runtime.Component.
func (s *Sheet) Render(r runtime.Renderer) *vdom.VNode {
	rows := make([]*vdom.VNode, 0, len(s.Items))
	for i, item := range s.Items {
		rows = append(rows, vdom.Div(map[string]any{"class": "specimen"},
			r.RenderChild("specimen-"+strconv.Itoa(i), item),
		))
	}
	return vdom.Div(map[string]any{"class": "specimens"}, rows...)
}
