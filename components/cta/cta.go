// Package cta renders the call-to-action section: headline, image card,
// body copy and a primary action.
package cta

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Props mirrors the section's property bag.
type Props struct {
	Headline     string `json:"headline" validate:"required"`
	ImageSrc     string `json:"imageSrc" validate:"required"`
	PrimaryLabel string `json:"primaryLabel" validate:"required"`
	ImageAlt     string `json:"imageAlt,omitempty"`
	Body         string `json:"body,omitempty"`
	// PrimaryHref turns the primary action into a link.
	PrimaryHref string `json:"primaryHref,omitempty"`
	ClassName   string `json:"className,omitempty"`
}

const (
	sectionClass = "w-full bg-gray-50 py-12 md:py-16"
	actionClass  = "inline-flex items-center justify-center rounded-full px-6 py-3 text-sm md:text-base font-semibold text-white bg-emerald-500 hover:bg-emerald-600 transition"
)

// New returns the section. Body renders as a paragraph; without it the templ
// children are rendered instead.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("section", markup.A("class", styles.Join(sectionClass, p.ClassName)))
		m.Open("div", markup.A("class", "max-w-6xl mx-auto px-4 md:px-6"))
		m.Element("h2", p.Headline, markup.A("class", "text-3xl md:text-4xl font-bold text-center mb-10 md:mb-12"))

		m.Open("div", markup.A("class", "bg-white rounded-3xl shadow-lg flex flex-col md:flex-row gap-8 md:gap-10 p-6 md:p-10"))
		m.Open("div", markup.A("class", "md:w-1/2"))
		m.Open("div", markup.A("class", "relative w-full overflow-hidden rounded-2xl"))
		if p.ImageSrc != "" {
			m.Void("img",
				markup.A("src", p.ImageSrc),
				markup.A("alt", p.ImageAlt),
				markup.A("class", "w-full h-full rounded-2xl object-cover"),
			)
		}
		m.Close("div")
		m.Close("div")

		m.Open("div", markup.A("class", "md:w-1/2 flex flex-col justify-between"))
		m.Open("div", markup.A("class", "text-base md:text-lg leading-relaxed text-gray-700 space-y-3"))
		if p.Body != "" {
			m.Element("p", p.Body)
		} else {
			m.Children(ctx)
		}
		m.Close("div")
		m.Open("div", markup.A("class", "mt-6"))
		if p.PrimaryHref != "" {
			m.Element("a", p.PrimaryLabel, markup.A("href", p.PrimaryHref), markup.A("class", actionClass))
		} else {
			m.Element("button", p.PrimaryLabel, markup.A("type", "button"), markup.A("class", actionClass))
		}
		m.Close("div")
		m.Close("div")
		m.Close("div")

		m.Close("div")
		m.Close("section")
		return m.Err()
	})
}
