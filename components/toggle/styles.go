package toggle

import "github.com/pthm/hxui/lib/styles"

type (
	Accent string
	Size   string
)

const (
	AccentPrimary   Accent = "primary"
	AccentSecondary Accent = "secondary"
	AccentSuccess   Accent = "success"
	AccentNeutral   Accent = "neutral"

	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
)

// Accents lists every switch accent.
func Accents() []Accent {
	return []Accent{AccentPrimary, AccentSecondary, AccentSuccess, AccentNeutral}
}

// Sizes lists every switch size.
func Sizes() []Size { return []Size{SizeSmall, SizeMedium} }

// Options are the style inputs of a switch.
type Options struct {
	Accent   Accent
	Size     Size
	Checked  bool
	Disabled bool
}

// Defaults returns secondary, medium, off.
func Defaults() Options {
	return Options{Accent: AccentSecondary, Size: SizeMedium}
}

type dims struct {
	track, thumb, translate string
}

var sizeDims = map[Size]dims{
	SizeSmall:  {track: "h-5 w-9", thumb: "h-3.5 w-3.5", translate: "translate-x-4"},
	SizeMedium: {track: "h-6 w-11", thumb: "h-5 w-5", translate: "translate-x-5"},
}

var accentClasses = map[Accent]string{
	AccentPrimary:   "bg-primary",
	AccentSecondary: "bg-secondary",
	AccentSuccess:   "bg-green-600",
	AccentNeutral:   "bg-gray-600",
}

var focusRings = map[Accent]string{
	AccentPrimary:   "focus:ring-primary/40",
	AccentSecondary: "focus:ring-secondary/40",
}

const (
	trackBase = "relative inline-flex items-center rounded-full transition-colors duration-200 outline-none focus:ring-2 focus:ring-offset-2"
	thumbBase = "inline-block transform rounded-full bg-white shadow ring-1 ring-black/5 transition-transform duration-200"
)

// Resolved holds the class lists of the track and its thumb.
type Resolved struct {
	Track string
	Thumb string
}

// Resolve maps options to the switch's class lists.
func Resolve(o Options) (Resolved, error) {
	accent, err := styles.Lookup("accent", accentClasses, o.Accent, AccentSecondary)
	if err != nil {
		return Resolved{}, err
	}
	size := styles.Default(o.Size, SizeMedium)
	d, ok := sizeDims[size]
	if !ok {
		return Resolved{}, styles.Invalid("size", string(o.Size))
	}

	return Resolved{
		Track: styles.Join(
			trackBase,
			d.track,
			styles.Pick(o.Checked, accent, "bg-gray-300"),
			styles.If(o.Checked, focusRings[styles.Default(o.Accent, AccentSecondary)]),
			styles.If(!o.Checked, "focus:ring-gray-300/50"),
			styles.If(o.Disabled, "opacity-60 cursor-not-allowed"),
		),
		Thumb: styles.Join(thumbBase, d.thumb, styles.Pick(o.Checked, d.translate, "translate-x-0.5")),
	}, nil
}
