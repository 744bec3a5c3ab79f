package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vcrobe/polytext/components/text"
	"github.com/vcrobe/polytext/vdom"
)

func newTextCmd() *cobra.Command {
	var (
		variant  string
		size     string
		colorArg string
		labelFor string
		safe     bool
	)

	cmd := &cobra.Command{
		Use:   "text [content...]",
		Short: "Render a single Text element",
		Example: `  polytext text --variant heading --size lg Heading
  polytext text --variant label --for someId --size sm --color secondary Label`,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := textProps(variant, size, colorArg, labelFor)
			if err != nil {
				return err
			}
			props.Children = vdom.Texts(strings.Join(args, " "))

			t, err := text.New(props)
			if err != nil {
				return err
			}

			render := vdom.HTMLString
			if safe {
				render = vdom.SafeHTML
			}
			out, err := render(t.Render(nil))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "p", "element kind: h1..h6, p, label, span (aliases: heading, paragraph)")
	cmd.Flags().StringVar(&size, "size", "md", "size: sm, md, lg")
	cmd.Flags().StringVar(&colorArg, "color", "", "color: primary, secondary (default primary)")
	cmd.Flags().StringVar(&labelFor, "for", "", "id of the element a label describes (label only)")
	cmd.Flags().BoolVar(&safe, "safe", false, "sanitize the output for embedding")

	return cmd
}

func textProps(variant, size, colorArg, labelFor string) (text.Props, error) {
	v, err := text.ParseVariant(variant)
	if err != nil {
		return text.Props{}, err
	}
	s, err := text.ParseSize(size)
	if err != nil {
		return text.Props{}, err
	}
	c, err := text.ParseColor(colorArg)
	if err != nil {
		return text.Props{}, err
	}
	return text.Props{Variant: v, Size: s, Color: c, LabelFor: labelFor}, nil
}
