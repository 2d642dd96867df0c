// Package checkbox renders labelled checkbox and radio inputs.
package checkbox

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Props is shared by Checkbox and Radio.
type Props struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Value      string `json:"value,omitempty"`
	Label      string `json:"label,omitempty"`
	HelperText string `json:"helperText,omitempty"`
	Color      Color  `json:"color,omitempty" validate:"omitempty,oneof=purple red"`
	Checked    bool   `json:"checked,omitempty"`
	Disabled   bool   `json:"disabled,omitempty"`
	Required   bool   `json:"required,omitempty"`
	ClassName  string `json:"className,omitempty"`
}

// Checkbox returns a checkbox control.
func Checkbox(p Props) templ.Component {
	return control(KindCheckbox, p)
}

// Radio returns a radio control.
func Radio(p Props) templ.Component {
	return control(KindRadio, p)
}

func control(kind Kind, p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := Resolve(Options{Kind: kind, Color: p.Color, Disabled: p.Disabled}, p.ClassName)
		if err != nil {
			return err
		}
		id := p.ID
		if id == "" {
			id = markup.AutoID(ctx, string(kind), p.Name, p.Value, p.Label)
		}
		describedBy := ""
		if p.HelperText != "" {
			describedBy = id + "-help"
		}

		m := markup.New(w)
		m.Open("div", markup.A("class", "flex flex-col gap-1"))
		m.Open("label", markup.A("class", styles.Join("inline-flex items-center gap-2 text-sm", styles.Pick(p.Disabled, "text-gray-400", "text-gray-800"))))
		m.Void("input",
			markup.A("id", id),
			markup.A("type", string(kind)),
			markup.Opt("name", p.Name),
			markup.Opt("value", p.Value),
			markup.Flag("checked", p.Checked),
			markup.Flag("disabled", p.Disabled),
			markup.Flag("required", p.Required),
			markup.Opt("aria-describedby", describedBy),
			markup.A("class", class),
		)
		m.Text(p.Label)
		m.Close("label")
		if p.HelperText != "" {
			m.Element("p", p.HelperText, markup.A("id", describedBy), markup.A("class", "text-xs text-gray-600 ml-6"))
		}
		m.Close("div")
		return m.Err()
	})
}
