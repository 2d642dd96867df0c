package badge

import "github.com/pthm/hxui/lib/styles"

type (
	Variant string
	Accent  string
	Size    string
)

const (
	VariantSoft    Variant = "soft"
	VariantSolid   Variant = "solid"
	VariantOutline Variant = "outline"

	AccentPrimary   Accent = "primary"
	AccentSecondary Accent = "secondary"
	AccentSuccess   Accent = "success"
	AccentWarning   Accent = "warning"
	AccentError     Accent = "error"
	AccentInfo      Accent = "info"
	AccentNeutral   Accent = "neutral"

	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
)

// Variants lists every badge variant.
func Variants() []Variant { return []Variant{VariantSoft, VariantSolid, VariantOutline} }

// Accents lists every badge accent.
func Accents() []Accent {
	return []Accent{AccentPrimary, AccentSecondary, AccentSuccess, AccentWarning, AccentError, AccentInfo, AccentNeutral}
}

// Sizes lists every badge size.
func Sizes() []Size { return []Size{SizeSmall, SizeMedium} }

// Options are the style inputs of a badge.
type Options struct {
	Variant Variant
	Accent  Accent
	Size    Size
}

// Defaults returns soft, neutral, medium.
func Defaults() Options {
	return Options{Variant: VariantSoft, Accent: AccentNeutral, Size: SizeMedium}
}

const baseClass = "inline-flex items-center justify-center font-bold uppercase tracking-wider rounded-full whitespace-nowrap transition-colors duration-200"

var sizeClasses = map[Size]string{
	SizeSmall:  "text-[10px] leading-3 px-2 py-0.5 gap-1",
	SizeMedium: "text-xs leading-4 px-2.5 py-1 gap-1.5",
}

var variantClasses = map[Variant]map[Accent]string{
	VariantSoft: {
		AccentPrimary:   "bg-primary/10 text-primary",
		AccentSecondary: "bg-secondary/10 text-secondary",
		AccentSuccess:   "bg-green-100 text-green-700",
		AccentWarning:   "bg-yellow-100 text-yellow-700",
		AccentError:     "bg-red-100 text-red-700",
		AccentInfo:      "bg-blue-100 text-blue-700",
		AccentNeutral:   "bg-gray-100 text-gray-700",
	},
	VariantSolid: {
		AccentPrimary:   "bg-primary text-white",
		AccentSecondary: "bg-secondary text-white",
		AccentSuccess:   "bg-green-600 text-white",
		AccentWarning:   "bg-yellow-500 text-white",
		AccentError:     "bg-red-600 text-white",
		AccentInfo:      "bg-blue-600 text-white",
		AccentNeutral:   "bg-gray-800 text-white",
	},
	VariantOutline: {
		AccentPrimary:   "ring-1 ring-inset ring-primary text-primary",
		AccentSecondary: "ring-1 ring-inset ring-secondary text-secondary",
		AccentSuccess:   "ring-1 ring-inset ring-green-600 text-green-700",
		AccentWarning:   "ring-1 ring-inset ring-yellow-500 text-yellow-700",
		AccentError:     "ring-1 ring-inset ring-red-600 text-red-700",
		AccentInfo:      "ring-1 ring-inset ring-blue-600 text-blue-700",
		AccentNeutral:   "ring-1 ring-inset ring-gray-300 text-gray-700",
	},
}

// Resolve maps options to the badge's class list. extra is appended last.
func Resolve(o Options, extra string) (string, error) {
	size, err := styles.Lookup("size", sizeClasses, o.Size, SizeMedium)
	if err != nil {
		return "", err
	}
	variant := styles.Default(o.Variant, VariantSoft)
	accents, ok := variantClasses[variant]
	if !ok {
		return "", styles.Invalid("variant", string(variant))
	}
	tone, err := styles.Lookup("accent", accents, o.Accent, AccentNeutral)
	if err != nil {
		return "", err
	}
	return styles.Join(baseClass, size, tone, extra), nil
}
