// Package input renders a labelled text input with helper text.
package input

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Props mirrors the input's property bag.
type Props struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Type        string  `json:"type,omitempty"`
	Label       string  `json:"label,omitempty"`
	HelperText  string  `json:"helperText,omitempty"`
	Placeholder string  `json:"placeholder,omitempty"`
	Value       string  `json:"value,omitempty"`
	Size        Size    `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Variant     Variant `json:"variant,omitempty" validate:"omitempty,oneof=default error success"`
	Color       Color   `json:"color,omitempty" validate:"omitempty,oneof=purple red"`
	Disabled    bool    `json:"disabled,omitempty"`
	Required    bool    `json:"required,omitempty"`
	ClassName   string  `json:"className,omitempty"`
}

// Options returns the style inputs carried by p.
func (p Props) Options() Options {
	return Options{Size: p.Size, Variant: p.Variant, Color: p.Color, Disabled: p.Disabled}
}

// New returns the input component.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r, err := Resolve(p.Options(), p.ClassName)
		if err != nil {
			return err
		}

		id := p.ID
		if id == "" {
			id = markup.AutoID(ctx, "input", p.Name, p.Label)
		}
		describedBy := ""
		if p.HelperText != "" {
			describedBy = id + "-help"
		}
		typ := p.Type
		if typ == "" {
			typ = "text"
		}

		m := markup.New(w)
		m.Open("div", markup.A("class", "flex w-full flex-col gap-1"))
		if p.Label != "" {
			m.Element("label", p.Label,
				markup.A("for", id),
				markup.A("class", styles.Join("text-sm font-medium", styles.Pick(p.Disabled, "text-gray-400", "text-gray-800"))),
			)
		}
		m.Void("input",
			markup.A("id", id),
			markup.A("type", typ),
			markup.Opt("name", p.Name),
			markup.Opt("value", p.Value),
			markup.Opt("placeholder", p.Placeholder),
			markup.Flag("disabled", p.Disabled),
			markup.Flag("required", p.Required),
			markup.Opt("aria-describedby", describedBy),
			markup.A("class", r.Control),
		)
		if p.HelperText != "" {
			m.Element("p", p.HelperText, markup.A("id", describedBy), markup.A("class", r.Helper))
		}
		m.Close("div")
		return m.Err()
	})
}
