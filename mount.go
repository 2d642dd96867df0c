package hxui

import (
	"sync"
	"sync/atomic"

	"golang.org/x/net/html"
)

// Mount is one hydrated placeholder. It owns the nodes rendered into the
// placeholder and the server-rendered children they replaced.
type Mount struct {
	name     string
	node     *html.Node
	original []*html.Node
	rendered []*html.Node

	once      sync.Once
	unmounted atomic.Bool
	onUnmount func()
}

// Name returns the mounted component's name.
func (m *Mount) Name() string {
	return m.name
}

// Node returns the placeholder element.
func (m *Mount) Node() *html.Node {
	return m.node
}

// Mounted reports whether the component is still mounted.
func (m *Mount) Mounted() bool {
	return !m.unmounted.Load()
}

// Unmount removes the rendered nodes and restores the server-rendered
// children. Calls after the first are no-ops.
func (m *Mount) Unmount() {
	m.once.Do(func() {
		for _, n := range m.rendered {
			if n.Parent == m.node {
				m.node.RemoveChild(n)
			}
		}
		for _, n := range m.original {
			m.node.AppendChild(n)
		}
		removeAttr(m.node, AttrMounted)
		m.unmounted.Store(true)
		if m.onUnmount != nil {
			m.onUnmount()
		}
	})
}

// Session is the result of one hydration scan. The caller owns it and is
// responsible for calling Cleanup.
type Session struct {
	mounts  []*Mount
	skipped []error
	once    sync.Once
}

// Mounts returns the mounts created by the scan, in document order.
func (s *Session) Mounts() []*Mount {
	out := make([]*Mount, len(s.mounts))
	copy(out, s.mounts)
	return out
}

// Skipped returns one *SkipError per placeholder that was left unmounted.
func (s *Session) Skipped() []error {
	out := make([]error, len(s.skipped))
	copy(out, s.skipped)
	return out
}

// Active returns the number of mounts that have not been unmounted.
func (s *Session) Active() int {
	n := 0
	for _, m := range s.mounts {
		if m.Mounted() {
			n++
		}
	}
	return n
}

// Cleanup unmounts every mount of the session. It is safe to call more than
// once; later calls do nothing.
func (s *Session) Cleanup() {
	s.once.Do(func() {
		for i := len(s.mounts) - 1; i >= 0; i-- {
			s.mounts[i].Unmount()
		}
	})
}
