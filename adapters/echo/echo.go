// Package hxuiecho provides Echo framework integration for hxui.
//
// Hydrate every HTML response of an Echo instance or group:
//
//	e := echo.New()
//	h := hxuiecho.Mount(e, components.NewRegistry())
//
// Or only the routes of a group:
//
//	g := e.Group("/app", authMiddleware)
//	hxuiecho.MountGroup(g, reg)
package hxuiecho

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/hxui"
)

// Option configures Mount and MountGroup.
type Option func(*options)

type options struct {
	hydrator []hxui.HydratorOption
	path     string
}

// WithHydratorOptions passes options (logger, metrics, tracer) to the
// hydrator built by Mount.
func WithHydratorOptions(opts ...hxui.HydratorOption) Option {
	return func(o *options) {
		o.hydrator = append(o.hydrator, opts...)
	}
}

// WithPath sets the URL prefix of the component routes.
// Defaults to "/_ui/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// Mount installs the hydration middleware on e and registers the component
// routes under the configured prefix:
//
//	GET /_ui/components      registered names as JSON
//	GET /_ui/preview/:name   a page holding a single placeholder
func Mount(e *echo.Echo, reg *hxui.Registry, opts ...Option) *hxui.Hydrator {
	o, h := setup(reg, opts)
	e.Use(Middleware(h))
	routes(e.GET, o.path, reg)
	return h
}

// MountGroup is Mount scoped to a group, so hydration shares the group's
// middleware (auth, logging, etc.).
func MountGroup(g *echo.Group, reg *hxui.Registry, opts ...Option) *hxui.Hydrator {
	o, h := setup(reg, opts)
	g.Use(Middleware(h))
	routes(g.GET, o.path, reg)
	return h
}

func setup(reg *hxui.Registry, opts []Option) (*options, *hxui.Hydrator) {
	o := &options{path: "/_ui/"}
	for _, opt := range opts {
		opt(o)
	}
	return o, hxui.NewHydrator(reg, o.hydrator...)
}

type getFunc func(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route

func routes(get getFunc, prefix string, reg *hxui.Registry) {
	get(prefix+"components", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"components": reg.Names()})
	})
	get(prefix+"preview/:name", func(c echo.Context) error {
		name := c.Param("name")
		if _, ok := reg.Lookup(name); !ok {
			return echo.ErrNotFound
		}
		props := c.QueryParam("props")
		if props == "" {
			props = "{}"
		}
		return c.HTML(http.StatusOK, "<!DOCTYPE html><html><head><title>"+templ.EscapeString(name)+
			"</title></head><body>"+hxui.PlaceholderHTML(name, props)+"</body></html>")
	})
}

// Middleware hydrates the HTML responses of the wrapped handlers with h.
// Handler errors that left the response uncommitted are returned untouched
// so Echo's error handler can write them.
func Middleware(h *hxui.Hydrator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response()
			orig := res.Writer
			buf := &bufferedWriter{ResponseWriter: orig}
			res.Writer = buf
			err := next(c)
			res.Writer = orig

			if !res.Committed {
				return err
			}

			body := buf.body.Bytes()
			if res.Status == http.StatusOK && c.Request().Method != http.MethodHead &&
				strings.HasPrefix(res.Header().Get(echo.HeaderContentType), echo.MIMETextHTML) {
				if out, herr := h.HydrateHTML(c.Request().Context(), body); herr != nil {
					c.Logger().Errorf("hxui: response hydration failed: %v", herr)
				} else {
					body = out
				}
			}

			res.Header().Set(echo.HeaderContentLength, strconv.Itoa(len(body)))
			orig.WriteHeader(res.Status)
			n, werr := orig.Write(body)
			res.Size = int64(n)
			if err != nil {
				return err
			}
			return werr
		}
	}
}

// bufferedWriter holds the body back until hydration is done. Headers go
// straight to the underlying writer's map.
type bufferedWriter struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (b *bufferedWriter) WriteHeader(int) {}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxuiecho.Render(c, page())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}

// Placeholder renders the placeholder element for a component, for handlers
// that emit a single island.
func Placeholder(c echo.Context, reg *hxui.Registry, name string, props any) error {
	return Render(c, reg.Placeholder(name, props))
}
