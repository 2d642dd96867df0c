package button

import "github.com/pthm/hxui/lib/styles"

// Color selects the brand color.
type Color string

// Variant selects filled or outlined rendering.
type Variant string

// Size selects padding and type scale.
type Size string

const (
	ColorRed    Color = "red"
	ColorPurple Color = "purple"

	VariantSolid   Variant = "solid"
	VariantOutline Variant = "outline"

	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Colors lists every Color.
func Colors() []Color { return []Color{ColorRed, ColorPurple} }

// Variants lists every Variant.
func Variants() []Variant { return []Variant{VariantSolid, VariantOutline} }

// Sizes lists every Size.
func Sizes() []Size { return []Size{SizeSmall, SizeMedium, SizeLarge} }

// Options are the style inputs of a button. Empty fields take the defaults
// returned by Defaults.
type Options struct {
	Color    Color
	Variant  Variant
	Size     Size
	Disabled bool
}

// Defaults returns the documented default for every option.
func Defaults() Options {
	return Options{
		Color:   ColorRed,
		Variant: VariantSolid,
		Size:    SizeMedium,
	}
}

const (
	baseClass     = "inline-block font-bold font-sans leading-none rounded-full cursor-pointer transition-all duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2"
	disabledClass = "opacity-60 cursor-not-allowed"
)

var sizeClasses = map[Size]string{
	SizeSmall:  "px-4 py-2 text-xs",
	SizeMedium: "px-5 py-[11px] text-sm",
	SizeLarge:  "px-6 py-3 text-base",
}

var variantClasses = map[Variant]map[Color]string{
	VariantSolid: {
		ColorRed:    "text-white bg-gradient-to-r from-[#FF5050] to-[#FF6A6A] hover:opacity-90 focus:ring-[#FF5050]/60",
		ColorPurple: "text-white bg-[#4C28D3] hover:bg-[#3C21AA] focus:ring-[#4C28D3]/60",
	},
	VariantOutline: {
		ColorRed:    "text-[#FF5050] bg-transparent border border-[#FF5050] hover:bg-[#FF5050]/10 focus:ring-[#FF5050]/50",
		ColorPurple: "text-[#4C28D3] bg-transparent border border-[#4C28D3] hover:bg-[#4C28D3]/10 focus:ring-[#4C28D3]/50",
	},
}

// Resolve maps options to the button's class list.
func Resolve(o Options) (string, error) {
	size, err := styles.Lookup("size", sizeClasses, o.Size, SizeMedium)
	if err != nil {
		return "", err
	}

	variant := styles.Default(o.Variant, VariantSolid)
	colors, ok := variantClasses[variant]
	if !ok {
		return "", styles.Invalid("variant", string(variant))
	}
	tone, err := styles.Lookup("color", colors, o.Color, ColorRed)
	if err != nil {
		return "", err
	}

	return styles.Join(baseClass, size, tone, styles.If(o.Disabled, disabledClass)), nil
}
