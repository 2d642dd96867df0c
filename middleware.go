package hxui

import (
	"bytes"
	"context"
	"mime"
	"net/http"
	"strconv"
)

// Middleware hydrates HTML responses on the server. Successful text/html
// responses are buffered, parsed, auto-hydrated and written out with the
// mounted markup. Other responses pass through unchanged.
func (h *Hydrator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &bufferedResponse{header: make(http.Header)}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		body := rec.body.Bytes()
		if rec.header.Get("Content-Type") == "" && len(body) > 0 {
			rec.header.Set("Content-Type", http.DetectContentType(body))
		}

		if status == http.StatusOK && isHTML(rec.header.Get("Content-Type")) && r.Method != http.MethodHead {
			if out, err := h.HydrateHTML(r.Context(), body); err != nil {
				h.log.Error().Err(err).Str("path", r.URL.Path).Msg("response hydration failed")
			} else {
				body = out
			}
		}

		for k, v := range rec.header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(status)
		_, _ = w.Write(body)
	})
}

// HydrateHTML parses markup as a document, auto-hydrates it and returns the
// rendered result. Framework adapters use it to hydrate buffered responses.
func (h *Hydrator) HydrateHTML(ctx context.Context, markup []byte) ([]byte, error) {
	doc, err := ParseDocument(bytes.NewReader(markup))
	if err != nil {
		return nil, err
	}
	if _, err := h.Auto(ctx, doc); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := doc.Render(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func isHTML(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "text/html"
}

// bufferedResponse captures a handler's response.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}
