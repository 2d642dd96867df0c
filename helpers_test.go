package hxui

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"
)

// greetingProps is a small props type for tests.
type greetingProps struct {
	Name string `json:"name" validate:"required"`
	Tone string `json:"tone,omitempty" validate:"omitempty,oneof=warm cold"`
}

func renderGreeting(p greetingProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tone := p.Tone
		if tone == "" {
			tone = "warm"
		}
		if _, err := io.WriteString(w, `<p class="greeting `+tone+`">Hello, `+templ.EscapeString(p.Name)+`</p>`); err != nil {
			return err
		}
		return templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), w)
	})
}

var (
	greeting = Define("Greeting", renderGreeting)

	failing = Define("Failing", func(struct{}) templ.Component {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return errors.New("render exploded")
		})
	})

	panicking = Define("Panicking", func(struct{}) templ.Component {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			panic("boom")
		})
	})

	// nester renders a placeholder of its own.
	nester = Define("Nester", func(struct{}) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `<section>`+PlaceholderHTML("Greeting", `{"name":"inner"}`)+`</section>`)
			return err
		})
	})
)

func testRegistry() *Registry {
	return MustRegistry([]Descriptor{greeting, failing, panicking, nester})
}
