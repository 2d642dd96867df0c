package checkbox

import "github.com/pthm/hxui/lib/styles"

// Color is the accent of a checked control.
type Color string

const (
	ColorPurple Color = "purple"
	ColorRed    Color = "red"
)

// Colors lists every control color.
func Colors() []Color { return []Color{ColorPurple, ColorRed} }

// Kind selects the control shape.
type Kind string

const (
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
)

// Options are the style inputs of a checkbox or radio.
type Options struct {
	Kind     Kind
	Color    Color
	Disabled bool
}

// Defaults returns a purple checkbox.
func Defaults() Options {
	return Options{Kind: KindCheckbox, Color: ColorPurple}
}

var ringClasses = map[Color]string{
	ColorPurple: "text-[#4C28D3] focus:ring-[#4C28D3]/40",
	ColorRed:    "text-[#FF5050] focus:ring-[#FF5050]/40",
}

var shapeClasses = map[Kind]string{
	KindCheckbox: "rounded",
	KindRadio:    "rounded-full",
}

const (
	baseClass     = "h-4 w-4 border-gray-300 text-current outline-none focus:ring-2"
	disabledClass = "cursor-not-allowed bg-gray-100 text-gray-400 border-gray-200"
)

// Resolve maps options to the control's class list; extra is appended.
func Resolve(o Options, extra string) (string, error) {
	shape, err := styles.Lookup("kind", shapeClasses, o.Kind, KindCheckbox)
	if err != nil {
		return "", err
	}
	ring, err := styles.Lookup("color", ringClasses, o.Color, ColorPurple)
	if err != nil {
		return "", err
	}
	return styles.Join(baseClass, shape, ring, styles.If(o.Disabled, disabledClass), extra), nil
}
