package hxui

import (
	"fmt"
	"sort"

	"github.com/a-h/templ"
)

// Registry maps component names to descriptors. It is built once at startup
// and never mutated afterwards, so concurrent lookups need no locking.
type Registry struct {
	descs   map[string]Descriptor
	names   []string
	encoder *Encoder
}

type registryConfig struct {
	signingKey []byte
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

// WithSigningKey enables sealed (signed msgpack) property bags. Without a
// key the registry only reads and writes JSON payloads.
func WithSigningKey(key []byte) RegistryOption {
	return func(c *registryConfig) {
		c.signingKey = key
	}
}

// NewRegistry builds a registry from descs. Empty or duplicate names fail
// with ErrDuplicateComponent.
func NewRegistry(descs []Descriptor, opts ...RegistryOption) (*Registry, error) {
	var cfg registryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	enc, err := NewEncoder(cfg.signingKey)
	if err != nil {
		return nil, fmt.Errorf("hxui: create encoder: %w", err)
	}

	reg := &Registry{
		descs:   make(map[string]Descriptor, len(descs)),
		names:   make([]string, 0, len(descs)),
		encoder: enc,
	}
	for _, d := range descs {
		name := d.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrDuplicateComponent)
		}
		if _, exists := reg.descs[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateComponent, name)
		}
		reg.descs[name] = d
		reg.names = append(reg.names, name)
	}
	sort.Strings(reg.names)
	return reg, nil
}

// MustRegistry is NewRegistry that panics on error. Use it for registries
// assembled from static descriptor lists.
func MustRegistry(descs []Descriptor, opts ...RegistryOption) *Registry {
	reg, err := NewRegistry(descs, opts...)
	if err != nil {
		panic(err.Error())
	}
	return reg
}

// Lookup returns the descriptor registered under name.
func (reg *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := reg.descs[name]
	return d, ok
}

// Names returns the registered names in sorted order.
func (reg *Registry) Names() []string {
	out := make([]string, len(reg.names))
	copy(out, reg.names)
	return out
}

// Len returns the number of registered components.
func (reg *Registry) Len() int {
	return len(reg.names)
}

// Codec returns the registry's property-bag codec.
func (reg *Registry) Codec() *Encoder {
	return reg.encoder
}

// Build resolves name and builds the component from payload.
func (reg *Registry) Build(name, payload string) (templ.Component, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	d, ok := reg.descs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return d.Build(reg.encoder, payload)
}
