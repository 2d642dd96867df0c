// Package badge renders compact status labels.
package badge

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
)

// Props mirrors the badge's property bag.
type Props struct {
	Variant   Variant `json:"variant,omitempty" validate:"omitempty,oneof=soft solid outline"`
	Accent    Accent  `json:"accent,omitempty" validate:"omitempty,oneof=primary secondary success warning error info neutral"`
	Size      Size    `json:"size,omitempty" validate:"omitempty,oneof=small medium"`
	ClassName string  `json:"className,omitempty"`
	Children  string  `json:"children,omitempty"`

	// Icon is rendered before the label. Server-side composition only.
	Icon templ.Component `json:"-"`
}

// Options returns the style inputs carried by p.
func (p Props) Options() Options {
	return Options{Variant: p.Variant, Accent: p.Accent, Size: p.Size}
}

// New returns the badge component. Without Children text, the templ
// children in the render context form the label.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := Resolve(p.Options(), p.ClassName)
		if err != nil {
			return err
		}

		m := markup.New(w)
		m.Open("span", markup.A("class", class))
		if p.Icon != nil {
			m.Open("span", markup.A("class", "flex-shrink-0"))
			m.Child(ctx, p.Icon)
			m.Close("span")
		}
		m.Open("span")
		m.Content(ctx, p.Children)
		m.Close("span")
		m.Close("span")
		return m.Err()
	})
}
