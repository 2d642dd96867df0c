// Package hero renders full-bleed hero sections and their content parts.
package hero

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Props mirrors the hero's property bag. Overlay is a pointer since it
// defaults to true.
type Props struct {
	BackgroundImage string `json:"backgroundImage,omitempty"`
	Align           Align  `json:"align,omitempty" validate:"omitempty,oneof=left center"`
	Overlay         *bool  `json:"overlay,omitempty"`
	ClassName       string `json:"className,omitempty"`
	Children        string `json:"children,omitempty"`
}

// HasOverlay reports whether the image overlay is drawn.
func (p Props) HasOverlay() bool {
	return p.Overlay == nil || *p.Overlay
}

// New returns the hero section.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r, err := Resolve(Options{Align: p.Align}, p.ClassName)
		if err != nil {
			return err
		}

		m := markup.New(w)
		m.Open("section", markup.A("class", r.Section))
		if p.BackgroundImage != "" {
			m.Open("div", markup.A("class", "pointer-events-none absolute inset-0 z-0"))
			m.Void("img",
				markup.A("src", p.BackgroundImage),
				markup.A("alt", "Hero background"),
				markup.A("class", "h-full w-full object-cover"),
			)
			if p.HasOverlay() {
				m.Open("div", markup.A("class", "absolute inset-0 bg-gradient-to-b from-black/70 via-black/60 to-black/80"))
				m.Close("div")
			}
			m.Close("div")
		}
		m.Open("div", markup.A("class", "pointer-events-none absolute inset-0 z-0"))
		m.Open("div", markup.A("class", "absolute inset-x-0 top-0 h-32 bg-gradient-to-b from-black/60 to-transparent"))
		m.Close("div")
		m.Open("div", markup.A("class", "absolute inset-x-0 bottom-0 h-40 bg-gradient-to-t from-black/70 to-transparent"))
		m.Close("div")
		m.Close("div")
		m.Open("div", markup.A("class", "relative z-10 flex h-full w-full items-center justify-center px-6 py-10 sm:px-10 md:px-16"))
		m.Open("div", markup.A("class", r.Stack))
		m.Content(ctx, p.Children)
		m.Close("div")
		m.Close("div")
		m.Close("section")
		return m.Err()
	})
}

// PartProps is the property bag shared by the hero's content parts.
type PartProps struct {
	ClassName string `json:"className,omitempty"`
	Children  string `json:"children,omitempty"`
}

const (
	contentClass  = "space-y-6 max-w-3xl"
	eyebrowClass  = "inline-flex items-center gap-2 rounded-full border border-white/10 bg-black/30 px-3 py-1 text-xs font-medium uppercase tracking-[0.18em] text-gray-200/80 backdrop-blur"
	titleClass    = "text-balance text-4xl font-semibold tracking-tight text-white sm:text-5xl md:text-6xl md:leading-[1.05]"
	subtitleClass = "text-pretty text-base text-gray-200/90 sm:text-lg md:text-xl"
	actionsClass  = "flex flex-wrap items-center gap-4"
)

// Content wraps the hero's text block.
func Content(p PartProps) templ.Component {
	return part("div", contentClass, "", p)
}

// Eyebrow renders the small label above the title.
func Eyebrow(p PartProps) templ.Component {
	dot := `<span class="inline-block h-1.5 w-1.5 rounded-full bg-gradient-to-r from-[#FF5050] to-[#FF6A6A]"></span>`
	return part("div", eyebrowClass, dot, p)
}

// Title renders the hero heading.
func Title(p PartProps) templ.Component {
	return part("h1", titleClass, "", p)
}

// Subtitle renders the supporting paragraph under the title.
func Subtitle(p PartProps) templ.Component {
	return part("p", subtitleClass, "", p)
}

// Actions lays out the hero's call-to-action buttons.
func Actions(p PartProps) templ.Component {
	return part("div", actionsClass, "", p)
}

func part(tag, class, lead string, p PartProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open(tag, markup.A("class", styles.Join(class, p.ClassName)))
		m.Raw(lead)
		m.Content(ctx, p.Children)
		m.Close(tag)
		return m.Err()
	})
}
