// Package hxui renders presentational UI components with templ and hydrates
// server-emitted placeholders with them.
//
// # Placeholders
//
// A server template emits an empty element naming a component and carrying
// its property bag:
//
//	<div data-ui-component="Button" data-ui-props='{"label":"Save"}'></div>
//
// Registry.Placeholder produces this markup from a typed props value. Props
// structs tag optional fields omitempty, so an unset field is left out of
// the bag and the component's own default applies. The server mirror and
// the component therefore agree on every default by construction.
//
// # Registry
//
// A Registry maps names to Descriptors. It is built once at startup and is
// read-only afterwards:
//
//	reg := hxui.MustRegistry([]hxui.Descriptor{
//	    hxui.Define("Button", button.New),
//	    hxui.Define("Alert", alert.New),
//	})
//
// Define ties a name to a render function over a props struct. Payloads are
// decoded into that struct (JSON, or signed or encrypted msgpack with
// WithSigningKey) and checked against its validate tags before rendering.
//
// # Hydration
//
// Hydrator.Hydrate finds every placeholder below a root node and mounts the
// named component into it. Placeholders are isolated from one another: an
// unknown name, a malformed or invalid property bag, or a component that
// fails while rendering leaves that one placeholder untouched and is
// reported in Session.Skipped. The scan continues with the rest.
//
//	sess := hydrator.Hydrate(ctx, doc.Body())
//	defer sess.Cleanup()
//
// Cleanup unmounts everything the scan mounted and restores the
// server-rendered children. It may be called more than once.
//
// Hydrator.Auto performs the one-shot hydration of a Document as soon as its
// ready signal has fired, and Hydrator.Middleware applies it to every HTML
// response of an http.Handler.
package hxui
