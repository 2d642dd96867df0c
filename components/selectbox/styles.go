package selectbox

import "github.com/pthm/hxui/lib/styles"

type (
	Size    string
	Variant string
	Accent  string
)

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"

	VariantDefault Variant = "default"
	VariantError   Variant = "error"
	VariantSuccess Variant = "success"

	AccentPrimary   Accent = "primary"
	AccentSecondary Accent = "secondary"
	AccentNeutral   Accent = "neutral"
)

// Sizes lists every size.
func Sizes() []Size { return []Size{SizeSmall, SizeMedium, SizeLarge} }

// Variants lists every variant.
func Variants() []Variant { return []Variant{VariantDefault, VariantError, VariantSuccess} }

// Accents lists every accent.
func Accents() []Accent { return []Accent{AccentPrimary, AccentSecondary, AccentNeutral} }

// Options are the style inputs of a select.
type Options struct {
	Size     Size
	Variant  Variant
	Accent   Accent
	Disabled bool
}

// Defaults returns medium, default, secondary.
func Defaults() Options {
	return Options{Size: SizeMedium, Variant: VariantDefault, Accent: AccentSecondary}
}

const (
	baseClass     = "block w-full appearance-none rounded-lg border bg-white dark:bg-gray-900 shadow-sm outline-none transition-all duration-200 focus:ring-4 dark:text-white"
	borderClass   = "border-gray-300 dark:border-gray-700"
	disabledClass = "cursor-not-allowed bg-gray-50 text-gray-500 border-gray-200 shadow-none"
)

var sizeClasses = map[Size]string{
	SizeSmall:  "h-9 text-xs pl-3 pr-8",
	SizeMedium: "h-10 text-sm pl-3.5 pr-9",
	SizeLarge:  "h-11 text-base pl-4 pr-10",
}

var accentClasses = map[Accent]string{
	AccentPrimary:   "focus:border-primary focus:ring-primary/20",
	AccentSecondary: "focus:border-secondary focus:ring-secondary/20",
	AccentNeutral:   "focus:border-gray-500 focus:ring-gray-500/20",
}

var variantClasses = map[Variant]string{
	VariantDefault: "border-gray-300",
	VariantSuccess: "border-green-500 focus:border-green-500 focus:ring-green-500/20 text-green-900",
	VariantError:   "border-red-500 focus:border-red-500 focus:ring-red-500/20 text-red-900",
}

var helperClasses = map[Variant]string{
	VariantDefault: "text-xs text-gray-500",
	VariantSuccess: "text-xs text-green-600",
	VariantError:   "text-xs text-red-600",
}

// Resolved holds the class lists of the control and its helper text.
type Resolved struct {
	Control string
	Helper  string
}

// Resolve maps options to the select's class lists. The accent only
// applies to the default variant.
func Resolve(o Options) (Resolved, error) {
	size, err := styles.Lookup("size", sizeClasses, o.Size, SizeMedium)
	if err != nil {
		return Resolved{}, err
	}
	accent, err := styles.Lookup("accent", accentClasses, o.Accent, AccentSecondary)
	if err != nil {
		return Resolved{}, err
	}
	variant, err := styles.Lookup("variant", variantClasses, o.Variant, VariantDefault)
	if err != nil {
		return Resolved{}, err
	}
	isDefault := styles.Default(o.Variant, VariantDefault) == VariantDefault

	return Resolved{
		Control: styles.Join(baseClass, size, styles.If(isDefault, accent), variant, borderClass, styles.If(o.Disabled, disabledClass)),
		Helper:  helperClasses[styles.Default(o.Variant, VariantDefault)],
	}, nil
}
