package hxui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pthm/hxui/lib/markup"
)

const tracerName = "github.com/pthm/hxui"

// SkipError describes a placeholder that hydration left unmounted.
type SkipError struct {
	// Index is the placeholder's position in document order within the scan.
	Index  int
	Name   string
	Reason string
	Err    error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("hxui: placeholder %d (%q) skipped: %v", e.Index, e.Name, e.Err)
}

func (e *SkipError) Unwrap() error {
	return e.Err
}

// Hydrator mounts registered components into placeholder elements.
type Hydrator struct {
	reg     *Registry
	log     zerolog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// HydratorOption configures a Hydrator.
type HydratorOption func(*Hydrator)

// WithLogger sets the logger used to report skipped placeholders.
func WithLogger(log zerolog.Logger) HydratorOption {
	return func(h *Hydrator) {
		h.log = log
	}
}

// WithMetrics records mounts and skips.
func WithMetrics(m *Metrics) HydratorOption {
	return func(h *Hydrator) {
		h.metrics = m
	}
}

// WithTracer sets the tracer for hydration spans. The default is the global
// provider's tracer.
func WithTracer(t trace.Tracer) HydratorOption {
	return func(h *Hydrator) {
		h.tracer = t
	}
}

// NewHydrator creates a hydrator over reg.
func NewHydrator(reg *Registry, opts ...HydratorOption) *Hydrator {
	h := &Hydrator{
		reg: reg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.tracer == nil {
		h.tracer = otel.Tracer(tracerName)
	}
	return h
}

// Registry returns the hydrator's registry.
func (h *Hydrator) Registry() *Registry {
	return h.reg
}

// Hydrate mounts a component into every placeholder below root.
//
// The set of placeholders is fixed before the first mount. Each placeholder
// is handled on its own: an empty or unknown name, a payload that fails to
// decode or validate, or a render that errors or panics skips that
// placeholder and the scan continues. Placeholders that are already mounted,
// or that an earlier mount in the same scan moved out of the tree, are not
// touched.
func (h *Hydrator) Hydrate(ctx context.Context, root *html.Node) *Session {
	ctx, span := h.tracer.Start(ctx, "hxui.Hydrate")
	defer span.End()
	start := time.Now()

	sess := &Session{}
	if root == nil {
		return sess
	}
	ctx = markup.WithIDScope(ctx)

	placeholders := findPlaceholders(root)
	for i, el := range placeholders {
		if hasAttr(el, AttrMounted) || !attached(el, root) {
			continue
		}

		name := attrValue(el, AttrComponent)
		m, err := h.mount(ctx, el, name)
		if err != nil {
			skip := &SkipError{Index: i, Name: name, Reason: skipReason(err), Err: err}
			sess.skipped = append(sess.skipped, skip)
			h.reportSkip(skip)
			span.AddEvent("skip", trace.WithAttributes(
				attribute.String("hxui.component", name),
				attribute.String("hxui.reason", skip.Reason),
			))
			continue
		}
		sess.mounts = append(sess.mounts, m)
		h.metrics.recordMount(name)
	}

	h.metrics.recordScan(time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("hxui.placeholders", len(placeholders)),
		attribute.Int("hxui.mounted", len(sess.mounts)),
		attribute.Int("hxui.skipped", len(sess.skipped)),
	)
	h.log.Debug().
		Int("placeholders", len(placeholders)).
		Int("mounted", len(sess.mounts)).
		Int("skipped", len(sess.skipped)).
		Dur("duration", time.Since(start)).
		Msg("hydration scan complete")
	return sess
}

// mount builds and renders the component for el. A panic anywhere before
// the tree is modified, in the component constructor, props validation or
// rendering, becomes an ErrMountFailed skip.
func (h *Hydrator) mount(ctx context.Context, el *html.Node, name string) (m *Mount, err error) {
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("%w: %s: panic: %v", ErrMountFailed, name, r)
		}
	}()

	comp, err := h.reg.Build(name, attrValue(el, AttrProps))
	if err != nil {
		return nil, err
	}

	original := childNodes(el)
	if len(original) > 0 {
		ctx = templ.WithChildren(ctx, nodesComponent(original))
	}

	var buf bytes.Buffer
	if err := comp.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMountFailed, name, err)
	}
	rendered, err := html.ParseFragment(&buf, fragmentContext(el))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: parse output: %w", ErrMountFailed, name, err)
	}

	for _, n := range original {
		el.RemoveChild(n)
	}
	for _, n := range rendered {
		el.AppendChild(n)
	}
	setAttr(el, AttrMounted, "")

	return &Mount{
		name:      name,
		node:      el,
		original:  original,
		rendered:  rendered,
		onUnmount: h.metrics.recordUnmount,
	}, nil
}

func (h *Hydrator) reportSkip(skip *SkipError) {
	h.metrics.recordSkip(skip.Reason)

	ev := h.log.Error()
	switch skip.Reason {
	case ReasonMissingName, ReasonUnknownComponent:
		ev = h.log.Warn()
	}
	ev.Err(skip.Err).
		Str("component", skip.Name).
		Str("reason", skip.Reason).
		Int("index", skip.Index).
		Msg("placeholder skipped")
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingName):
		return ReasonMissingName
	case errors.Is(err, ErrUnknownComponent):
		return ReasonUnknownComponent
	case errors.Is(err, ErrInvalidProps):
		return ReasonInvalidProps
	default:
		return ReasonMountFailed
	}
}

// nodesComponent renders existing nodes as templ children.
func nodesComponent(nodes []*html.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for _, n := range nodes {
			if err := html.Render(w, n); err != nil {
				return err
			}
		}
		return nil
	})
}

// fragmentContext returns a detached copy of el for html.ParseFragment, which
// requires DataAtom to agree with Data. Nodes built by hand often leave
// DataAtom unset.
func fragmentContext(el *html.Node) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      el.Data,
		DataAtom:  atom.Lookup([]byte(el.Data)),
		Namespace: el.Namespace,
	}
}
