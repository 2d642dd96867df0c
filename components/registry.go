// Package components assembles every component of the library into the
// default hydration registry.
package components

import (
	"github.com/pthm/hxui"
	"github.com/pthm/hxui/components/alert"
	"github.com/pthm/hxui/components/badge"
	"github.com/pthm/hxui/components/button"
	"github.com/pthm/hxui/components/card"
	"github.com/pthm/hxui/components/checkbox"
	"github.com/pthm/hxui/components/cta"
	"github.com/pthm/hxui/components/footer"
	"github.com/pthm/hxui/components/hero"
	"github.com/pthm/hxui/components/input"
	"github.com/pthm/hxui/components/navbar"
	"github.com/pthm/hxui/components/selectbox"
	"github.com/pthm/hxui/components/toggle"
)

// Descriptors for every component, keyed by the names server templates use.
var (
	Button = hxui.Define("Button", button.New)
	Alert  = hxui.Define("Alert", alert.New)
	Badge  = hxui.Define("Badge", badge.New)

	Card       = hxui.Define("Card", card.New)
	CardHeader = hxui.Define("CardHeader", card.Header)
	CardBody   = hxui.Define("CardBody", card.Body)
	CardFooter = hxui.Define("CardFooter", card.Footer)
	CardImage  = hxui.Define("CardImage", card.Image)

	Input    = hxui.Define("Input", input.New)
	Select   = hxui.Define("Select", selectbox.New)
	Switch   = hxui.Define("Switch", toggle.New)
	Checkbox = hxui.Define("Checkbox", checkbox.Checkbox)
	Radio    = hxui.Define("Radio", checkbox.Radio)

	Hero         = hxui.Define("Hero", hero.New)
	HeroContent  = hxui.Define("HeroContent", hero.Content)
	HeroEyebrow  = hxui.Define("HeroEyebrow", hero.Eyebrow)
	HeroTitle    = hxui.Define("HeroTitle", hero.Title)
	HeroSubtitle = hxui.Define("HeroSubtitle", hero.Subtitle)
	HeroActions  = hxui.Define("HeroActions", hero.Actions)

	Cta    = hxui.Define("Cta", cta.New)
	Navbar = hxui.Define("Navbar", navbar.New)
	Footer = hxui.Define("Footer", footer.New)
)

// Descriptors returns every component descriptor.
func Descriptors() []hxui.Descriptor {
	return []hxui.Descriptor{
		Button, Alert, Badge,
		Card, CardHeader, CardBody, CardFooter, CardImage,
		Input, Select, Switch, Checkbox, Radio,
		Hero, HeroContent, HeroEyebrow, HeroTitle, HeroSubtitle, HeroActions,
		Cta, Navbar, Footer,
	}
}

// NewRegistry builds the registry of all components. Call it once at
// startup and share the result.
func NewRegistry(opts ...hxui.RegistryOption) *hxui.Registry {
	return hxui.MustRegistry(Descriptors(), opts...)
}
