package hero

import "github.com/pthm/hxui/lib/styles"

// Align positions the hero content horizontally.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Aligns lists every alignment.
func Aligns() []Align { return []Align{AlignLeft, AlignCenter} }

// Options are the style inputs of a hero section.
type Options struct {
	Align Align
}

// Defaults returns left alignment.
func Defaults() Options {
	return Options{Align: AlignLeft}
}

const (
	sectionClass = "relative flex h-[70vh] min-h-[520px] w-full items-center justify-center overflow-hidden bg-gradient-to-br from-[#111827] via-[#020617] to-[#111827]"
	stackClass   = "flex w-full max-w-6xl flex-col gap-8"
)

var alignClasses = map[Align]string{
	AlignLeft:   "items-start text-left",
	AlignCenter: "items-center text-center",
}

// Resolved holds the class lists of the section and its content stack.
type Resolved struct {
	Section string
	Stack   string
}

// Resolve maps options to the hero's class lists; extra is appended to the
// section.
func Resolve(o Options, extra string) (Resolved, error) {
	align, err := styles.Lookup("align", alignClasses, o.Align, AlignLeft)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{
		Section: styles.Join(sectionClass, extra),
		Stack:   styles.Join(stackClass, align),
	}, nil
}
