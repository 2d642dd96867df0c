package card

import "github.com/pthm/hxui/lib/styles"

type (
	Variant string
	Accent  string
)

const (
	VariantElevated Variant = "elevated"
	VariantOutline  Variant = "outline"
	VariantSoft     Variant = "soft"
	VariantGhost    Variant = "ghost"

	AccentPrimary   Accent = "primary"
	AccentSecondary Accent = "secondary"
	AccentNone      Accent = "none"
)

// Variants lists every card variant.
func Variants() []Variant {
	return []Variant{VariantElevated, VariantOutline, VariantSoft, VariantGhost}
}

// Accents lists every card accent.
func Accents() []Accent { return []Accent{AccentPrimary, AccentSecondary, AccentNone} }

// Options are the style inputs of a card.
type Options struct {
	Variant   Variant
	Accent    Accent
	Hoverable bool
}

// Defaults returns elevated, no accent, not hoverable.
func Defaults() Options {
	return Options{Variant: VariantElevated, Accent: AccentNone}
}

const (
	baseClass      = "relative flex flex-col overflow-hidden rounded-2xl transition-all duration-300 ease-out"
	hoverableClass = "hover:-translate-y-1 hover:shadow-xl cursor-pointer"
)

var variantClasses = map[Variant]string{
	VariantElevated: "bg-white shadow-md border border-gray-100 dark:bg-gray-900 dark:border-gray-800",
	VariantOutline:  "bg-white border border-gray-200 dark:bg-transparent dark:border-gray-700",
	VariantSoft:     "bg-gray-50/50 border border-gray-100 dark:bg-gray-800/50 dark:border-gray-700",
	VariantGhost:    "bg-transparent border-transparent",
}

// AccentNone intentionally contributes no classes.
var accentClasses = map[Accent]string{
	AccentPrimary:   "border-l-4 border-l-[#FF514B]",
	AccentSecondary: "border-l-4 border-l-[#3643B3]",
	AccentNone:      "",
}

// Resolve maps options to the card's class list.
func Resolve(o Options, extra string) (string, error) {
	variant, err := styles.Lookup("variant", variantClasses, o.Variant, VariantElevated)
	if err != nil {
		return "", err
	}
	accent, err := styles.Lookup("accent", accentClasses, o.Accent, AccentNone)
	if err != nil {
		return "", err
	}
	return styles.Join(baseClass, variant, accent, styles.If(o.Hoverable, hoverableClass), extra), nil
}
