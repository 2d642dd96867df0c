// Package navbar renders the sticky site navigation bar.
package navbar

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Link is one navigation entry.
type Link struct {
	Label  string `json:"label" validate:"required"`
	Href   string `json:"href" validate:"required"`
	Active bool   `json:"active,omitempty"`
}

// Props mirrors the navbar's property bag. Logo is text; LogoContent, when
// set from Go, replaces it.
type Props struct {
	Logo      string `json:"logo" validate:"required"`
	Links     []Link `json:"links,omitempty" validate:"dive"`
	ClassName string `json:"className,omitempty"`

	LogoContent templ.Component `json:"-"`
	Actions     templ.Component `json:"-"`
}

const (
	navClass      = "sticky top-0 z-50 w-full bg-white/90 backdrop-blur-md border-b border-gray-100 shadow-sm transition-all duration-200 dark:bg-gray-900/90 dark:border-gray-800"
	linkClass     = "text-sm font-medium transition-colors duration-200"
	activeClass   = "text-primary dark:text-primary-light"
	inactiveClass = "text-gray-600 hover:text-gray-900 dark:text-gray-300 dark:hover:text-white"
	menuIcon      = `<svg class="h-6 w-6" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" d="M3.75 6.75h16.5M3.75 12h16.5m-16.5 5.25h16.5"></path></svg>`
)

// LinkClass returns the class list of a link in the given state.
func LinkClass(active bool) string {
	return styles.Join(linkClass, styles.Pick(active, activeClass, inactiveClass))
}

// New returns the navbar.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("nav", markup.A("class", styles.Join(navClass, p.ClassName)))
		m.Open("div", markup.A("class", "mx-auto max-w-7xl px-4 sm:px-6 lg:px-8"))
		m.Open("div", markup.A("class", "flex h-16 items-center justify-between"))

		m.Open("div", markup.A("class", "flex-shrink-0 font-bold text-xl tracking-tight text-gray-900 dark:text-white"))
		if p.LogoContent != nil {
			m.Child(ctx, p.LogoContent)
		} else {
			m.Element("span", p.Logo, markup.A("class", "bg-clip-text text-transparent bg-gradient-to-r from-primary to-primary-light"))
		}
		m.Close("div")

		m.Open("div", markup.A("class", "hidden md:block"))
		m.Open("div", markup.A("class", "ml-10 flex items-baseline space-x-8"))
		for _, l := range p.Links {
			current := ""
			if l.Active {
				current = "page"
			}
			m.Element("a", l.Label,
				markup.A("href", l.Href),
				markup.A("class", LinkClass(l.Active)),
				markup.Opt("aria-current", current),
			)
		}
		m.Close("div")
		m.Close("div")

		m.Open("div", markup.A("class", "hidden md:block"))
		if p.Actions != nil {
			m.Open("div", markup.A("class", "flex items-center gap-4"))
			m.Child(ctx, p.Actions)
			m.Close("div")
		}
		m.Close("div")

		m.Open("div", markup.A("class", "-mr-2 flex md:hidden"))
		m.Open("button",
			markup.A("type", "button"),
			markup.A("aria-label", "Open menu"),
			markup.A("class", "inline-flex items-center justify-center rounded-lg p-2 text-gray-600 hover:bg-gray-100 dark:text-gray-300"),
		)
		m.Raw(menuIcon)
		m.Close("button")
		m.Close("div")

		m.Close("div")
		m.Close("div")
		m.Close("nav")
		return m.Err()
	})
}
