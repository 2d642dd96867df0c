package hxui

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"
)

// Descriptor identifies a named, mountable component. Build turns a
// serialized property bag into a renderable component.
type Descriptor interface {
	Name() string
	Build(codec *Encoder, payload string) (templ.Component, error)
}

// Component[P] is the Descriptor for a component whose properties decode
// into P. P is a plain struct whose json tags name the wire fields and whose
// validate tags constrain them.
//
//	var Button = hxui.Define("Button", button.New)
type Component[P any] struct {
	name   string
	render func(P) templ.Component
}

// Define creates a descriptor. Names are the keys used by the
// data-ui-component attribute and must be unique within a Registry.
func Define[P any](name string, render func(P) templ.Component) *Component[P] {
	return &Component[P]{name: name, render: render}
}

// Name returns the component's registry key.
func (c *Component[P]) Name() string {
	return c.name
}

// Render renders typed props directly, skipping decode and validation.
func (c *Component[P]) Render(props P) templ.Component {
	return c.render(props)
}

// Decode decodes and validates a payload into P. An empty payload yields the
// zero P, so every optional property takes its default.
func (c *Component[P]) Decode(codec *Encoder, payload string) (P, error) {
	var props P
	if err := codec.Decode(payload, &props); err != nil {
		return props, fmt.Errorf("%w: %s: %w", ErrInvalidProps, c.name, wrapEncodingError(err))
	}
	if err := validateProps(props); err != nil {
		return props, fmt.Errorf("%w: %s: %s", ErrInvalidProps, c.name, err)
	}
	return props, nil
}

// Build decodes, validates and renders. It satisfies Descriptor.
func (c *Component[P]) Build(codec *Encoder, payload string) (templ.Component, error) {
	props, err := c.Decode(codec, payload)
	if err != nil {
		return nil, err
	}
	return c.render(props), nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field names in errors are
// the json wire names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

func validateProps(props any) error {
	t := reflect.TypeOf(props)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	err := validatorInstance().Struct(props)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, 0, len(ves))
		for _, fe := range ves {
			msgs = append(msgs, fmt.Sprintf("%s failed validation for tag '%s'", wireFieldName(fe), fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return err
}

// wireFieldName drops the struct name from the namespace ("Props.links[0].href"
// becomes "links[0].href").
func wireFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
