package hxui

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Placeholder attributes. A placeholder is any element carrying AttrComponent;
// AttrProps is optional. AttrMounted is set on placeholders that currently
// hold a mounted component.
const (
	AttrComponent = "data-ui-component"
	AttrProps     = "data-ui-props"
	AttrMounted   = "data-ui-mounted"
)

// Placeholder returns the server-side mirror of a component: an empty div
// naming the component and carrying props as compact JSON. Optional fields
// tagged omitempty are left out so the component's own defaults apply.
//
//	@reg.Placeholder("Button", button.Props{Label: "Save"})
func (reg *Registry) Placeholder(name string, props any) templ.Component {
	return reg.placeholder(name, props, reg.encoder.JSON)
}

// SealedPlaceholder is Placeholder with a signed msgpack payload. The
// registry must have been built WithSigningKey.
func (reg *Registry) SealedPlaceholder(name string, props any) templ.Component {
	return reg.placeholder(name, props, reg.encoder.Sign)
}

// EncryptedPlaceholder is Placeholder with an AES-GCM encrypted payload,
// for props the page must not reveal.
func (reg *Registry) EncryptedPlaceholder(name string, props any) templ.Component {
	return reg.placeholder(name, props, reg.encoder.Encrypt)
}

func (reg *Registry) placeholder(name string, props any, encode func(any) (string, error)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		payload, err := encodePayload(props, encode)
		if err != nil {
			return fmt.Errorf("hxui: encode props for %q: %w", name, wrapEncodingError(err))
		}
		open, closing := placeholderTags(name, payload)
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		children := templ.GetChildren(ctx)
		if err := children.Render(templ.ClearChildren(ctx), w); err != nil {
			return err
		}
		_, err = io.WriteString(w, closing)
		return err
	})
}

func encodePayload(props any, encode func(any) (string, error)) (string, error) {
	if props == nil {
		props = struct{}{}
	}
	return encode(props)
}

// PlaceholderHTML formats a placeholder element for an already encoded
// payload.
func PlaceholderHTML(name, payload string) string {
	open, closing := placeholderTags(name, payload)
	return open + closing
}

func placeholderTags(name, payload string) (string, string) {
	return `<div ` + AttrComponent + `="` + templ.EscapeString(name) + `" ` +
		AttrProps + `="` + templ.EscapeString(payload) + `">`, `</div>`
}
