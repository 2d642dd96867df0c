// Package toggle renders an on/off switch (role="switch").
package toggle

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Props mirrors the switch's property bag. Checked is a pointer because an
// explicit false must win over DefaultChecked.
type Props struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Label          string `json:"label,omitempty"`
	Checked        *bool  `json:"checked,omitempty"`
	DefaultChecked bool   `json:"defaultChecked,omitempty"`
	Accent         Accent `json:"accent,omitempty" validate:"omitempty,oneof=primary secondary success neutral"`
	Size           Size   `json:"size,omitempty" validate:"omitempty,oneof=small medium"`
	Disabled       bool   `json:"disabled,omitempty"`
	ClassName      string `json:"className,omitempty"`
}

// On reports the rendered state.
func (p Props) On() bool {
	if p.Checked != nil {
		return *p.Checked
	}
	return p.DefaultChecked
}

// Options returns the style inputs carried by p. Checked wins over
// DefaultChecked.
func (p Props) Options() Options {
	return Options{Accent: p.Accent, Size: p.Size, Checked: p.On(), Disabled: p.Disabled}
}

// New returns the switch component.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r, err := Resolve(p.Options())
		if err != nil {
			return err
		}
		id := p.ID
		if id == "" {
			id = markup.AutoID(ctx, "switch", p.Name, p.Label)
		}
		labelID := ""
		if p.Label != "" {
			labelID = id + "-label"
		}
		ariaDisabled := ""
		if p.Disabled {
			ariaDisabled = "true"
		}

		m := markup.New(w)
		m.Open("div", markup.A("class", styles.Join("inline-flex items-center gap-3", p.ClassName)))
		m.Open("button",
			markup.A("type", "button"),
			markup.A("id", id),
			markup.A("role", "switch"),
			markup.A("aria-checked", strconv.FormatBool(p.On())),
			markup.Opt("aria-labelledby", labelID),
			markup.Opt("aria-disabled", ariaDisabled),
			markup.Opt("name", p.Name),
			markup.Flag("disabled", p.Disabled),
			markup.A("class", r.Track),
		)
		m.Open("span", markup.A("class", r.Thumb))
		m.Close("span")
		m.Close("button")
		if p.Label != "" {
			m.Element("span", p.Label,
				markup.A("id", labelID),
				markup.A("class", styles.Join("text-sm select-none font-medium", styles.Pick(p.Disabled, "text-gray-400", "text-gray-700"))),
			)
		}
		m.Close("div")
		return m.Err()
	})
}
