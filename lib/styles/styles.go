// Package styles holds the building blocks shared by every component's style
// resolver: class-list joining, conditional classes, and enum table lookups
// that apply a single documented default and reject unknown values.
package styles

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// ErrInvalidOption is returned when a resolver receives a value outside its
// enumerated set.
var ErrInvalidOption = errors.New("styles: invalid option")

// Join concatenates class fragments into a single class attribute value.
// Empty fragments are dropped and whitespace is collapsed.
func Join(parts ...string) string {
	classes := make([]any, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		classes = append(classes, p)
	}
	if len(classes) == 0 {
		return ""
	}
	return strings.Join(strings.Fields(templ.Classes(classes...).String()), " ")
}

// If returns class when cond holds, otherwise the empty string.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// Pick returns a when cond holds, otherwise b.
func Pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// Default returns def when v is the zero value.
func Default[E ~string](v, def E) E {
	if v == "" {
		return def
	}
	return v
}

// Lookup resolves value in table, substituting def when value is empty.
// Unknown values fail with ErrInvalidOption instead of resolving to nothing.
func Lookup[E ~string](option string, table map[E]string, value, def E) (string, error) {
	v := Default(value, def)
	class, ok := table[v]
	if !ok {
		return "", Invalid(option, string(v))
	}
	return class, nil
}

// Valid reports whether v is one of values. The empty value is valid and
// means "use the default".
func Valid[E ~string](v E, values []E) bool {
	if v == "" {
		return true
	}
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Invalid builds the error for an unrecognized option value.
func Invalid(option, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidOption, option, value)
}

// Check verifies that every value has a non-empty entry in table and that
// the table holds no entries outside values. Tables that intentionally map a
// value to "" (for example an accent of "none") list it in allowEmpty.
func Check[E ~string](option string, table map[E]string, values []E, allowEmpty ...E) error {
	var errs []error
	for _, v := range values {
		class, ok := table[v]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: no entry for %q", option, v))
			continue
		}
		if class == "" && !contains(allowEmpty, v) {
			errs = append(errs, fmt.Errorf("%s: empty entry for %q", option, v))
		}
	}

	extra := make([]string, 0)
	for k := range table {
		if !contains(values, k) {
			extra = append(extra, string(k))
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		errs = append(errs, fmt.Errorf("%s: undocumented entry %q", option, k))
	}
	return errors.Join(errs...)
}

func contains[E comparable](values []E, v E) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
