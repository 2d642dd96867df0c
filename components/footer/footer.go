// Package footer renders the site footer with link columns.
package footer

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/markup"
	"github.com/pthm/hxui/lib/styles"
)

// Link is one entry of a footer column.
type Link struct {
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required"`
}

// Column is a titled group of footer links.
type Column struct {
	Title string `json:"title" validate:"required"`
	Links []Link `json:"links,omitempty" validate:"dive"`
}

// Props mirrors the footer's property bag. Year defaults to the current year.
type Props struct {
	Copyright string   `json:"copyright" validate:"required"`
	Columns   []Column `json:"columns,omitempty" validate:"dive"`
	Tagline   string   `json:"tagline,omitempty"`
	Year      int      `json:"year,omitempty" validate:"omitempty,gte=1970"`
	ClassName string   `json:"className,omitempty"`

	Logo    templ.Component `json:"-"`
	Socials templ.Component `json:"-"`
}

const (
	DefaultTagline = "Building digital products that matter."

	footerClass = "bg-white text-gray-900 py-12 border-t border-gray-200 dark:bg-gray-900 dark:text-white dark:border-gray-800"
	linkClass   = "text-sm leading-6 text-gray-600 hover:text-gray-900 dark:text-gray-400 dark:hover:text-white transition-colors duration-200"
	legalClass  = "text-xs text-gray-500 hover:text-gray-900 dark:text-gray-400 dark:hover:text-gray-300"
)

// Notice returns the copyright line.
func (p Props) Notice() string {
	year := p.Year
	if year == 0 {
		year = time.Now().Year()
	}
	return "© " + strconv.Itoa(year) + " " + p.Copyright + ". All rights reserved."
}

// New returns the footer.
func New(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tagline := p.Tagline
		if tagline == "" {
			tagline = DefaultTagline
		}

		m := markup.New(w)
		m.Open("footer", markup.A("class", styles.Join(footerClass, p.ClassName)))
		m.Open("div", markup.A("class", "mx-auto max-w-7xl px-6 lg:px-8"))
		m.Open("div", markup.A("class", "grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8 mb-12"))

		m.Open("div", markup.A("class", "space-y-4"))
		if p.Logo != nil {
			m.Open("div", markup.A("class", "mb-4"))
			m.Child(ctx, p.Logo)
			m.Close("div")
		}
		m.Element("p", tagline, markup.A("class", "text-sm text-gray-500 dark:text-gray-400 max-w-xs"))
		if p.Socials != nil {
			m.Open("div", markup.A("class", "flex gap-4 pt-2"))
			m.Child(ctx, p.Socials)
			m.Close("div")
		}
		m.Close("div")

		for _, col := range p.Columns {
			m.Open("div")
			m.Element("h3", col.Title, markup.A("class", "text-sm font-semibold leading-6 text-gray-900 dark:text-white tracking-wider uppercase mb-4"))
			m.Open("ul", markup.A("role", "list"), markup.A("class", "space-y-3"))
			for _, l := range col.Links {
				m.Open("li")
				m.Element("a", l.Label, markup.A("href", l.Href), markup.A("class", linkClass))
				m.Close("li")
			}
			m.Close("ul")
			m.Close("div")
		}
		m.Close("div")

		m.Open("div", markup.A("class", "border-t border-gray-200 dark:border-gray-800 pt-8 flex flex-col md:flex-row justify-between items-center gap-4"))
		m.Element("p", p.Notice(), markup.A("class", "text-xs leading-5 text-gray-500 dark:text-gray-400"))
		m.Open("div", markup.A("class", "flex gap-6"))
		m.Element("a", "Privacy Policy", markup.A("href", "#"), markup.A("class", legalClass))
		m.Element("a", "Terms of Service", markup.A("href", "#"), markup.A("class", legalClass))
		m.Close("div")
		m.Close("div")

		m.Close("div")
		m.Close("footer")
		return m.Err()
	})
}
