// Package button renders the primary call-to-action control.
package button

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
)

// Props mirrors the button's property bag. Optional fields are omitted from
// the serialized bag when unset so the defaults apply.
type Props struct {
	Label    string  `json:"label" validate:"required"`
	Color    Color   `json:"color,omitempty" validate:"omitempty,oneof=red purple"`
	Variant  Variant `json:"variant,omitempty" validate:"omitempty,oneof=solid outline"`
	Size     Size    `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Disabled bool    `json:"disabled,omitempty"`
	Type     string  `json:"type,omitempty" validate:"omitempty,oneof=button submit reset"`
	ID       string  `json:"id,omitempty"`
}

// Options returns the style inputs carried by p.
func (p Props) Options() Options {
	return Options{
		Color:    p.Color,
		Variant:  p.Variant,
		Size:     p.Size,
		Disabled: p.Disabled,
	}
}

// New returns the button component.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := Resolve(p.Options())
		if err != nil {
			return err
		}

		typ := p.Type
		if typ == "" {
			typ = "button"
		}

		m := markup.New(w)
		m.Open("button",
			markup.A("type", typ),
			markup.Opt("id", p.ID),
			markup.Flag("disabled", p.Disabled),
			markup.A("class", class),
		)
		m.Text(p.Label)
		m.Close("button")
		return m.Err()
	})
}
