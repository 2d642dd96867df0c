//go:build property
// +build property

package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/components/badge"
	"github.com/pthm/hxui/components/button"
)

// TestResolverProperties checks that style resolution is a pure function of
// its options.
func TestResolverProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("button resolution is deterministic", prop.ForAll(
		func(color, variant, size string, disabled bool) bool {
			o := button.Options{
				Color:    button.Color(color),
				Variant:  button.Variant(variant),
				Size:     button.Size(size),
				Disabled: disabled,
			}
			a, errA := button.Resolve(o)
			b, errB := button.Resolve(o)
			return a == b && (errA == nil) == (errB == nil)
		},
		gen.OneConstOf("", "red", "purple", "green"),
		gen.OneConstOf("", "solid", "outline", "ghost"),
		gen.OneConstOf("", "small", "medium", "large", "xl"),
		gen.Bool(),
	))

	properties.Property("badge rejects exactly the undocumented values", prop.ForAll(
		func(accent string) bool {
			_, err := badge.Resolve(badge.Options{Accent: badge.Accent(accent)}, "")
			known := accent == ""
			for _, a := range badge.Accents() {
				if string(a) == accent {
					known = true
				}
			}
			return (err == nil) == known
		},
		gen.OneConstOf("", "primary", "secondary", "success", "warning", "error", "info", "neutral", "pink", "Primary"),
	))

	properties.TestingRun(t)
}

// TestHydrationIsolation checks that a broken placeholder never prevents the
// valid placeholders around it from mounting.
func TestHydrationIsolation(t *testing.T) {
	reg := NewRegistry()
	properties := gopter.NewProperties(nil)

	properties.Property("valid placeholders mount regardless of broken neighbours", prop.ForAll(
		func(kinds []int) bool {
			var page strings.Builder
			valid := 0
			for i, k := range kinds {
				switch k % 4 {
				case 0:
					page.WriteString(hxui.PlaceholderHTML("Button", fmt.Sprintf(`{"label":"b%d"}`, i)))
					valid++
				case 1:
					page.WriteString(hxui.PlaceholderHTML("Missing", "{}"))
				case 2:
					page.WriteString(hxui.PlaceholderHTML("Badge", "{not json"))
				case 3:
					page.WriteString(hxui.PlaceholderHTML("Button", `{"label":"x","color":"teal"}`))
				}
			}
			res, err := hxui.TestHydrate(reg, page.String())
			if err != nil {
				return false
			}
			ok := res.MountCount() == valid && res.SkipCount() == len(kinds)-valid
			res.Session.Cleanup()
			return ok && res.Session.Active() == 0
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}
