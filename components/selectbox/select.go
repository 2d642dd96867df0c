// Package selectbox renders a styled native select with a chevron.
package selectbox

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Option is one choice of the select.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Props mirrors the select's property bag.
type Props struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name,omitempty"`
	Label      string   `json:"label,omitempty"`
	HelperText string   `json:"helperText,omitempty"`
	Value      string   `json:"value,omitempty"`
	Options    []Option `json:"options,omitempty" validate:"dive"`
	Size       Size     `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Variant    Variant  `json:"variant,omitempty" validate:"omitempty,oneof=default error success"`
	Accent     Accent   `json:"accent,omitempty" validate:"omitempty,oneof=primary secondary neutral"`
	Disabled   bool     `json:"disabled,omitempty"`
	Required   bool     `json:"required,omitempty"`
	Multiple   bool     `json:"multiple,omitempty"`
	ClassName  string   `json:"className,omitempty"`
}

// Style returns the style inputs carried by p.
func (p Props) Style() Options {
	return Options{Size: p.Size, Variant: p.Variant, Accent: p.Accent, Disabled: p.Disabled}
}

const chevron = `<svg viewBox="0 0 20 20" fill="currentColor" aria-hidden="true" class="h-5 w-5"><path fill-rule="evenodd" d="M5.23 7.21a.75.75 0 011.06.02L10 11.168l3.71-3.938a.75.75 0 111.08 1.04l-4.24 4.5a.75.75 0 01-1.08 0l-4.24-4.5a.75.75 0 01.02-1.06z" clip-rule="evenodd"></path></svg>`

// New returns the select component. Options come from Props.Options, then
// from any templ children (pre-rendered <option> elements).
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r, err := Resolve(p.Style())
		if err != nil {
			return err
		}

		id := p.ID
		if id == "" {
			id = markup.AutoID(ctx, "select", p.Name, p.Label)
		}
		describedBy := ""
		if p.HelperText != "" {
			describedBy = id + "-help"
		}

		m := markup.New(w)
		m.Open("div", markup.A("class", styles.Join("flex w-full flex-col gap-1.5", p.ClassName)))
		if p.Label != "" {
			m.Element("label", p.Label,
				markup.A("for", id),
				markup.A("class", styles.Join("text-sm font-medium", styles.Pick(p.Disabled, "text-gray-400", "text-gray-700 dark:text-gray-200"))),
			)
		}
		m.Open("div", markup.A("class", "relative"))
		m.Open("select",
			markup.A("id", id),
			markup.Opt("name", p.Name),
			markup.Flag("disabled", p.Disabled),
			markup.Flag("required", p.Required),
			markup.Flag("multiple", p.Multiple),
			markup.Opt("aria-describedby", describedBy),
			markup.A("class", r.Control),
		)
		for _, o := range p.Options {
			m.Element("option", o.Label,
				markup.A("value", o.Value),
				markup.Flag("selected", p.Value != "" && o.Value == p.Value),
				markup.Flag("disabled", o.Disabled),
			)
		}
		m.Children(ctx)
		m.Close("select")
		m.Open("span", markup.A("class", "pointer-events-none absolute inset-y-0 right-0 flex items-center pr-3 text-gray-400"))
		m.Raw(chevron)
		m.Close("span")
		m.Close("div")
		if p.HelperText != "" {
			m.Element("p", p.HelperText, markup.A("id", describedBy), markup.A("class", r.Helper))
		}
		m.Close("div")
		return m.Err()
	})
}
