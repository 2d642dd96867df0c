package alert

import "github.com/pthm/hxui/lib/styles"

// Variant selects the alert's tone.
type Variant string

const (
	VariantInfo    Variant = "info"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
	VariantNeutral Variant = "neutral"
)

// Variants lists every alert variant.
func Variants() []Variant {
	return []Variant{VariantInfo, VariantSuccess, VariantWarning, VariantError, VariantNeutral}
}

// Tone is the set of class lists one variant contributes to the alert's
// parts.
type Tone struct {
	Accent   string // left bar
	IconWrap string // icon circle background and ring
	Icon     string
	Text     string
	Border   string
	Bg       string
}

const baseClass = "relative overflow-hidden rounded-xl border shadow-sm text-sm transition-all duration-200"

var tones = map[Variant]Tone{
	VariantInfo: {
		Accent:   "bg-secondary",
		IconWrap: "bg-secondary/10 ring-secondary/20",
		Icon:     "text-secondary",
		Text:     "text-gray-800",
		Border:   "border-gray-200",
		Bg:       "bg-white",
	},
	VariantSuccess: {
		Accent:   "bg-green-500",
		IconWrap: "bg-green-50 ring-green-200",
		Icon:     "text-green-600",
		Text:     "text-gray-800",
		Border:   "border-green-200",
		Bg:       "bg-green-50/50",
	},
	VariantWarning: {
		Accent:   "bg-[#FF7A00]",
		IconWrap: "bg-[#FF7A00]/10 ring-[#FF7A00]/20",
		Icon:     "text-[#FF7A00]",
		Text:     "text-gray-800",
		Border:   "border-amber-200",
		Bg:       "bg-amber-50/50",
	},
	VariantError: {
		Accent:   "bg-[#FF0000]",
		IconWrap: "bg-[#FF0000]/10 ring-[#FF0000]/20",
		Icon:     "text-[#FF0000]",
		Text:     "text-gray-800",
		Border:   "border-red-200",
		Bg:       "bg-red-50/50",
	},
	VariantNeutral: {
		Accent:   "bg-gray-500",
		IconWrap: "bg-gray-100 ring-gray-200",
		Icon:     "text-gray-600",
		Text:     "text-gray-600",
		Border:   "border-gray-200",
		Bg:       "bg-gray-50/50",
	},
}

// Resolved holds the class lists for every part of an alert.
type Resolved struct {
	Root     string
	Accent   string
	IconWrap string
	Icon     string
	Text     string
}

// Resolve maps a variant (default info) to the alert's class lists.
func Resolve(v Variant, extra string) (Resolved, error) {
	v = styles.Default(v, VariantInfo)
	t, ok := tones[v]
	if !ok {
		return Resolved{}, styles.Invalid("variant", string(v))
	}
	return Resolved{
		Root:     styles.Join(baseClass, t.Border, t.Bg, extra),
		Accent:   styles.Join("absolute left-0 top-0 h-full w-1", t.Accent),
		IconWrap: styles.Join("inline-flex h-8 w-8 shrink-0 items-center justify-center rounded-full ring-1 ring-inset", t.IconWrap),
		Icon:     t.Icon,
		Text:     styles.Join("flex-1 pt-0.5", t.Text),
	}, nil
}

// Role returns the ARIA role for a variant: "alert" for error and warning,
// empty otherwise.
func Role(v Variant) string {
	switch styles.Default(v, VariantInfo) {
	case VariantError, VariantWarning:
		return "alert"
	default:
		return ""
	}
}
