// Package markup writes HTML elements for templ.ComponentFunc bodies.
//
// A Writer carries the first write error so component bodies can emit a
// sequence of elements and check the error once at the end:
//
//	m := markup.New(w)
//	m.Open("button", markup.A("type", "button"), markup.A("class", classes))
//	m.Text(props.Label)
//	m.Close("button")
//	return m.Err()
package markup

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"sync"

	"github.com/a-h/templ"
)

// Attr is a single element attribute. Attributes render in the order given.
type Attr struct {
	Key   string
	Value string
	// Bool renders the attribute without a value (disabled, checked).
	Bool bool
	// Skip suppresses the attribute entirely.
	Skip bool
}

// A returns a valued attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Opt returns a valued attribute that is omitted when value is empty.
func Opt(key, value string) Attr {
	return Attr{Key: key, Value: value, Skip: value == ""}
}

// Flag returns a boolean attribute rendered only when on is true.
func Flag(key string, on bool) Attr {
	return Attr{Key: key, Bool: true, Skip: !on}
}

// Writer emits HTML to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered.
func (m *Writer) Err() error {
	return m.err
}

func (m *Writer) write(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Open writes a start tag.
func (m *Writer) Open(tag string, attrs ...Attr) {
	m.write("<" + tag)
	for _, a := range attrs {
		if a.Skip || a.Key == "" {
			continue
		}
		if a.Bool {
			m.write(" " + a.Key)
			continue
		}
		m.write(" " + a.Key + `="` + templ.EscapeString(a.Value) + `"`)
	}
	m.write(">")
}

// Void writes a start tag for an element without content (img, input).
func (m *Writer) Void(tag string, attrs ...Attr) {
	m.Open(tag, attrs...)
}

// Close writes an end tag.
func (m *Writer) Close(tag string) {
	m.write("</" + tag + ">")
}

// Text writes escaped character data.
func (m *Writer) Text(s string) {
	m.write(templ.EscapeString(s))
}

// Raw writes s verbatim. Only for markup owned by this module (icons).
func (m *Writer) Raw(s string) {
	m.write(s)
}

// Element writes a complete element holding escaped text.
func (m *Writer) Element(tag, text string, attrs ...Attr) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Child renders a nested component in place. Nil components are ignored.
// The nested component does not inherit the templ children of ctx.
func (m *Writer) Child(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(templ.ClearChildren(ctx), m.w)
}

// Content renders text when it is non-empty, otherwise the templ children
// carried by ctx.
func (m *Writer) Content(ctx context.Context, text string) {
	if text != "" {
		m.Text(text)
		return
	}
	m.Children(ctx)
}

// Children renders the templ children carried by ctx. A child that itself
// falls back to children sees none.
func (m *Writer) Children(ctx context.Context) {
	m.Child(ctx, templ.GetChildren(ctx))
}

type idScopeKey struct{}

// idScope counts the ids handed out within one document.
type idScope struct {
	mu   sync.Mutex
	seen map[string]int
}

// WithIDScope returns a context in which AutoID hands out ids that are
// unique across every component rendered with it. One scope covers one
// document.
func WithIDScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, idScopeKey{}, &idScope{seen: make(map[string]int)})
}

// AutoID derives an element id from the component kind and the properties
// that identify the instance. Rendering the same properties twice yields the
// same id, except within an id scope where repeats get a "-2", "-3", ...
// suffix.
func AutoID(ctx context.Context, kind string, parts ...string) string {
	h := fnv.New32a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	id := fmt.Sprintf("ui-%s-%08x", kind, h.Sum32())

	scope, ok := ctx.Value(idScopeKey{}).(*idScope)
	if !ok {
		return id
	}
	scope.mu.Lock()
	defer scope.mu.Unlock()
	scope.seen[id]++
	if n := scope.seen[id]; n > 1 {
		return fmt.Sprintf("%s-%d", id, n)
	}
	return id
}
