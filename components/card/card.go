// Package card renders content containers and their header, body, footer
// and image sections. Every part is registered on its own so server
// templates can emit placeholders for any of them.
package card

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Props mirrors the card's property bag.
type Props struct {
	Variant   Variant `json:"variant,omitempty" validate:"omitempty,oneof=elevated outline soft ghost"`
	Accent    Accent  `json:"accent,omitempty" validate:"omitempty,oneof=primary secondary none"`
	Hoverable bool    `json:"hoverable,omitempty"`
	ClassName string  `json:"className,omitempty"`
	Children  string  `json:"children,omitempty"`
}

// Options returns the style inputs carried by p.
func (p Props) Options() Options {
	return Options{Variant: p.Variant, Accent: p.Accent, Hoverable: p.Hoverable}
}

// New returns the card container.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := Resolve(p.Options(), p.ClassName)
		if err != nil {
			return err
		}
		m := markup.New(w)
		m.Open("div", markup.A("class", class))
		m.Content(ctx, p.Children)
		m.Close("div")
		return m.Err()
	})
}

// HeaderProps mirrors the card header's property bag.
type HeaderProps struct {
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	ClassName string `json:"className,omitempty"`
	Children  string `json:"children,omitempty"`

	Action templ.Component `json:"-"`
}

// Header returns the card header.
func Header(p HeaderProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("div", markup.A("class", styles.Join("flex items-start justify-between gap-4 px-6 pt-6 mb-2", p.ClassName)))
		m.Open("div", markup.A("class", "flex flex-col gap-1"))
		if p.Title != "" {
			m.Element("h3", p.Title, markup.A("class", "text-xl font-bold text-gray-900 dark:text-white leading-tight tracking-tight"))
		}
		if p.Subtitle != "" {
			m.Element("p", p.Subtitle, markup.A("class", "text-sm text-gray-500 dark:text-gray-400 font-medium uppercase tracking-wide"))
		}
		m.Content(ctx, p.Children)
		m.Close("div")
		if p.Action != nil {
			m.Open("div", markup.A("class", "flex-shrink-0"))
			m.Child(ctx, p.Action)
			m.Close("div")
		}
		m.Close("div")
		return m.Err()
	})
}

// SectionProps mirrors the property bag shared by body and footer.
type SectionProps struct {
	ClassName string `json:"className,omitempty"`
	Children  string `json:"children,omitempty"`
}

const (
	bodyClass   = "px-6 py-2 text-base text-gray-600 dark:text-gray-300 flex-grow leading-relaxed"
	footerClass = "px-6 pb-6 pt-4 mt-auto flex items-center justify-between border-t border-gray-100 dark:border-gray-800"
)

// Body returns the card body.
func Body(p SectionProps) templ.Component {
	return section(bodyClass, p)
}

// Footer returns the card footer.
func Footer(p SectionProps) templ.Component {
	return section(footerClass, p)
}

func section(base string, p SectionProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("div", markup.A("class", styles.Join(base, p.ClassName)))
		m.Content(ctx, p.Children)
		m.Close("div")
		return m.Err()
	})
}

// ImageProps mirrors the card image's property bag.
type ImageProps struct {
	Src       string `json:"src" validate:"required"`
	Alt       string `json:"alt,omitempty"`
	LogoSrc   string `json:"logoSrc,omitempty"`
	ClassName string `json:"className,omitempty"`
}

// Image returns the card's top image with an optional logo overlay.
func Image(p ImageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("div", markup.A("class", "relative w-full h-56 sm:h-64 overflow-hidden bg-gray-100 dark:bg-gray-800 shrink-0"))
		m.Void("img",
			markup.A("src", p.Src),
			markup.A("alt", p.Alt),
			markup.A("class", styles.Join("w-full h-full object-cover transition-transform duration-700 hover:scale-105", p.ClassName)),
		)
		if p.LogoSrc != "" {
			m.Open("div", markup.A("class", "absolute top-6 left-6 w-auto h-12 md:h-14"))
			m.Void("img",
				markup.A("src", p.LogoSrc),
				markup.A("alt", "Logo Overlay"),
				markup.A("class", "w-full h-full object-contain drop-shadow-md"),
			)
			m.Close("div")
		}
		m.Open("div", markup.A("class", "absolute inset-0 bg-gradient-to-t from-black/10 to-transparent pointer-events-none"))
		m.Close("div")
		m.Close("div")
		return m.Err()
	})
}
