// Package alert renders inline status messages with a tone-colored accent
// bar, an icon and an optional dismiss button.
package alert

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
)

// Props mirrors the alert's property bag.
type Props struct {
	Title       string  `json:"title,omitempty"`
	Children    string  `json:"children,omitempty"`
	Variant     Variant `json:"variant,omitempty" validate:"omitempty,oneof=info success warning error neutral"`
	Dismissible bool    `json:"dismissible,omitempty"`
	ClassName   string  `json:"className,omitempty"`
}

const (
	infoPath    = `<path fill-rule="evenodd" d="M18 10a8 8 0 11-16 0 8 8 0 0116 0Zm-7-4a1 1 0 11-2 0 1 1 0 012 0ZM9 9a.75.75 0 000 1.5h.253a.25.25 0 01.244.304l-.459 2.066A1.75 1.75 0 0010.747 15H11a.75.75 0 000-1.5h-.253a.25.25 0 01-.244-.304l.459-2.066A1.75 1.75 0 009.253 9H9Z" clip-rule="evenodd"></path>`
	successPath = `<path fill-rule="evenodd" d="M10 18a8 8 0 100-16 8 8 0 000 16Zm3.857-9.809a.75.75 0 00-1.214-.882l-3.483 4.79-1.88-1.88a.75.75 0 10-1.06 1.061l2.5 2.5a.75.75 0 001.137-.089l4-5.5Z" clip-rule="evenodd"></path>`
	warningPath = `<path fill-rule="evenodd" d="M8.485 2.495c.673-1.167 2.357-1.167 3.03 0l6.28 10.875c.673 1.167-.17 2.625-1.516 2.625H3.72c-1.347 0-2.189-1.458-1.515-2.625L8.485 2.495ZM10 5a.75.75 0 01.75.75v3.5a.75.75 0 01-1.5 0v-3.5A.75.75 0 0110 5Zm0 9a1 1 0 100-2 1 1 0 000 2Z" clip-rule="evenodd"></path>`
	errorPath   = `<path fill-rule="evenodd" d="M10 18a8 8 0 100-16 8 8 0 000 16ZM8.28 7.22a.75.75 0 00-1.06 1.06L8.94 10l-1.72 1.72a.75.75 0 101.06 1.06L10 11.06l1.72 1.72a.75.75 0 101.06-1.06L11.06 10l1.72-1.72a.75.75 0 00-1.06-1.06L10 8.94 8.28 7.22Z" clip-rule="evenodd"></path>`
	dismissPath = `<path fill-rule="evenodd" d="M10 18a8 8 0 100-16 8 8 0 000 16ZM7.47 7.47a.75.75 0 011.06 0L10 8.94l1.47-1.47a.75.75 0 111.06 1.06L11.06 10l1.47 1.47a.75.75 0 11-1.06 1.06L10 11.06l-1.47 1.47a.75.75 0 11-1.06-1.06L8.94 10 7.47 8.53a.75.75 0 010-1.06z" clip-rule="evenodd"></path>`

	svgOpen  = `<svg viewBox="0 0 20 20" fill="currentColor" class="h-5 w-5" aria-hidden="true">`
	svgClose = `</svg>`

	dismissClass = "ml-2 -mr-1.5 -mt-1.5 inline-flex h-8 w-8 items-center justify-center rounded-full text-gray-400 hover:text-gray-600 hover:bg-black/5 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-gray-300 transition-colors"
)

var icons = map[Variant]string{
	VariantInfo:    infoPath,
	VariantSuccess: successPath,
	VariantWarning: warningPath,
	VariantError:   errorPath,
	VariantNeutral: infoPath,
}

// New returns the alert component.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r, err := Resolve(p.Variant, p.ClassName)
		if err != nil {
			return err
		}
		variant := p.Variant
		if variant == "" {
			variant = VariantInfo
		}

		m := markup.New(w)
		m.Open("div", markup.A("class", r.Root), markup.Opt("role", Role(p.Variant)))
		m.Open("div", markup.A("class", r.Accent))
		m.Close("div")

		m.Open("div", markup.A("class", "p-4 pl-5 sm:p-5"))
		m.Open("div", markup.A("class", "flex items-start gap-3"))

		m.Open("span", markup.A("class", r.IconWrap))
		m.Open("span", markup.A("class", r.Icon))
		m.Raw(svgOpen + icons[variant] + svgClose)
		m.Close("span")
		m.Close("span")

		m.Open("div", markup.A("class", r.Text))
		if p.Title != "" {
			m.Element("div", p.Title, markup.A("class", "mb-1 text-sm font-semibold leading-none text-gray-900"))
		}
		m.Open("div", markup.A("class", "text-sm leading-relaxed opacity-90"))
		m.Content(ctx, p.Children)
		m.Close("div")
		m.Close("div")

		if p.Dismissible {
			m.Open("button",
				markup.A("type", "button"),
				markup.A("aria-label", "Dismiss"),
				markup.A("data-ui-dismiss", ""),
				markup.A("class", dismissClass),
			)
			m.Raw(svgOpen + dismissPath + svgClose)
			m.Close("button")
		}

		m.Close("div")
		m.Close("div")
		m.Close("div")
		return m.Err()
	})
}
