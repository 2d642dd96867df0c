package input

import "github.com/pthm/hxui/lib/styles"

type (
	Size    string
	Variant string
	Color   string
)

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"

	VariantDefault Variant = "default"
	VariantError   Variant = "error"
	VariantSuccess Variant = "success"

	ColorPurple Color = "purple"
	ColorRed    Color = "red"
)

// Sizes lists every size.
func Sizes() []Size { return []Size{SizeSmall, SizeMedium, SizeLarge} }

// Variants lists every variant.
func Variants() []Variant { return []Variant{VariantDefault, VariantError, VariantSuccess} }

// Colors lists every color.
func Colors() []Color { return []Color{ColorPurple, ColorRed} }

// Options are the style inputs of a text input.
type Options struct {
	Size     Size
	Variant  Variant
	Color    Color
	Disabled bool
}

// Defaults returns medium, default, purple.
func Defaults() Options {
	return Options{Size: SizeMedium, Variant: VariantDefault, Color: ColorPurple}
}

const (
	baseClass     = "block w-full rounded-lg border bg-white shadow-sm outline-none transition focus:ring-2 placeholder:text-gray-400"
	disabledClass = "cursor-not-allowed bg-gray-100 text-gray-500 border-gray-200"
)

var sizeClasses = map[Size]string{
	SizeSmall:  "h-9 text-xs px-3",
	SizeMedium: "h-10 text-sm px-3.5",
	SizeLarge:  "h-11 text-base px-4",
}

// Only the default variant takes its border from the color.
var colorBorders = map[Color]string{
	ColorPurple: "border-[#4C28D3]/50 focus:border-[#4C28D3] focus:ring-[#4C28D3]/50",
	ColorRed:    "border-[#FF5050]/50 focus:border-[#FF5050] focus:ring-[#FF5050]/50",
}

var variantBorders = map[Variant]string{
	VariantError:   "border-red-400 focus:ring-red-400",
	VariantSuccess: "border-green-400 focus:ring-green-400",
}

var helperClasses = map[Variant]string{
	VariantDefault: "text-xs text-gray-600",
	VariantError:   "text-xs text-red-600",
	VariantSuccess: "text-xs text-green-600",
}

// Resolved holds the class lists of the control and its helper text.
type Resolved struct {
	Control string
	Helper  string
}

// Resolve maps options to the input's class lists.
func Resolve(o Options, extra string) (Resolved, error) {
	size, err := styles.Lookup("size", sizeClasses, o.Size, SizeMedium)
	if err != nil {
		return Resolved{}, err
	}
	color, err := styles.Lookup("color", colorBorders, o.Color, ColorPurple)
	if err != nil {
		return Resolved{}, err
	}
	helper, err := styles.Lookup("variant", helperClasses, o.Variant, VariantDefault)
	if err != nil {
		return Resolved{}, err
	}

	border := color
	if v := styles.Default(o.Variant, VariantDefault); v != VariantDefault {
		border = variantBorders[v]
	}

	return Resolved{
		Control: styles.Join(baseClass, size, border, styles.If(o.Disabled, disabledClass), extra),
		Helper:  helper,
	}, nil
}
