package hxui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// Document is an HTML document tree plus its ready signal. A document built
// with NewDocument is loading until Load or MarkReady; ParseDocument returns
// a document that is already ready.
type Document struct {
	mu    sync.Mutex
	root  *html.Node
	ready chan struct{}
	once  sync.Once

	auto *Session
}

// NewDocument returns an empty, loading document.
func NewDocument() *Document {
	return &Document{
		root:  &html.Node{Type: html.DocumentNode},
		ready: make(chan struct{}),
	}
}

// ParseDocument parses r into a ready document.
func ParseDocument(r io.Reader) (*Document, error) {
	d := NewDocument()
	if err := d.Load(r); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseDocumentString is ParseDocument over a string.
func ParseDocumentString(s string) (*Document, error) {
	return ParseDocument(strings.NewReader(s))
}

// Load parses r as the document's content and fires the ready signal.
func (d *Document) Load(r io.Reader) error {
	root, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("hxui: parse document: %w", err)
	}
	d.mu.Lock()
	d.root = root
	d.mu.Unlock()
	d.MarkReady()
	return nil
}

// MarkReady fires the ready signal. Later calls do nothing.
func (d *Document) MarkReady() {
	d.once.Do(func() {
		close(d.ready)
	})
}

// Ready returns a channel closed once the document is ready.
func (d *Document) Ready() <-chan struct{} {
	return d.ready
}

// IsReady reports whether the ready signal has fired.
func (d *Document) IsReady() bool {
	select {
	case <-d.ready:
		return true
	default:
		return false
	}
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.root
}

// Body returns the <body> element, or the document node if there is none.
func (d *Document) Body() *html.Node {
	root := d.Root()
	if body := findElement(root, "body"); body != nil {
		return body
	}
	return root
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root())
}

// HydrateDocument hydrates the document body.
func (h *Hydrator) HydrateDocument(ctx context.Context, doc *Document) *Session {
	return h.Hydrate(ctx, doc.Body())
}

// Auto runs the document's one-shot hydration. If the document is ready it
// hydrates immediately; otherwise it waits for the ready signal or for ctx to
// end. Once a document has been auto-hydrated, later calls return the same
// session without scanning again. Hydrating markup added afterwards needs an
// explicit Hydrate call.
func (h *Hydrator) Auto(ctx context.Context, doc *Document) (*Session, error) {
	if !doc.IsReady() {
		select {
		case <-doc.Ready():
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrNotReady, ctx.Err())
		}
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()
	if doc.auto == nil {
		body := findElement(doc.root, "body")
		if body == nil {
			body = doc.root
		}
		doc.auto = h.Hydrate(ctx, body)
	}
	return doc.auto, nil
}
