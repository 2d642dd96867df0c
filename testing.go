package hxui

import (
	"bytes"
	"context"
	"strings"
)

// TestResult holds the outcome of rendering or hydrating for tests.
//
// Provides convenience methods for asserting on HTML content and on what a
// hydration scan mounted or skipped.
type TestResult struct {
	HTML    string
	Session *Session
}

// TestRender decodes payload through desc exactly as hydration would, then
// renders the component.
//
//	result, err := hxui.TestRender(components.Button, `{"label":"Save"}`)
//	if !result.HTMLContains(">Save<") {
//	    t.Fatal("missing label")
//	}
func TestRender(desc Descriptor, payload string) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), desc, payload)
}

// TestRenderWithContext is TestRender with a caller-supplied context, for
// components that read templ children or other context values.
func TestRenderWithContext(ctx context.Context, desc Descriptor, payload string) (*TestResult, error) {
	enc, err := NewEncoder(nil)
	if err != nil {
		return nil, err
	}
	comp, err := desc.Build(enc, payload)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := comp.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return &TestResult{HTML: buf.String()}, nil
}

// TestHydrate parses markup, hydrates its body with reg and returns the
// resulting document markup together with the session.
//
//	result, err := hxui.TestHydrate(reg, `<div data-ui-component="Button" data-ui-props='{"label":"Save"}'></div>`)
//	if result.MountCount() != 1 { ... }
func TestHydrate(reg *Registry, markup string) (*TestResult, error) {
	doc, err := ParseDocumentString(markup)
	if err != nil {
		return nil, err
	}
	sess := NewHydrator(reg).HydrateDocument(context.Background(), doc)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, err
	}
	return &TestResult{HTML: buf.String(), Session: sess}, nil
}

// HTMLContains checks if the HTML output contains the given substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// MountCount returns the number of mounts of a TestHydrate result.
func (r *TestResult) MountCount() int {
	if r.Session == nil {
		return 0
	}
	return len(r.Session.mounts)
}

// SkipCount returns the number of skipped placeholders of a TestHydrate
// result.
func (r *TestResult) SkipCount() int {
	if r.Session == nil {
		return 0
	}
	return len(r.Session.skipped)
}
