package hxui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDocumentIsReady(t *testing.T) {
	doc, err := ParseDocumentString(`<!doctype html><html><body><p>x</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if !doc.IsReady() {
		t.Error("parsed document should be ready")
	}
	if doc.Body().Data != "body" {
		t.Errorf("Body() = %q", doc.Body().Data)
	}
}

func TestNewDocumentIsLoading(t *testing.T) {
	doc := NewDocument()
	if doc.IsReady() {
		t.Fatal("new document should be loading")
	}
	doc.MarkReady()
	doc.MarkReady()
	if !doc.IsReady() {
		t.Error("MarkReady should fire the signal")
	}
	if doc.Body() != doc.Root() {
		t.Error("empty document body should fall back to the root")
	}
}

func TestAutoHydratesReadyDocument(t *testing.T) {
	doc, _ := ParseDocumentString(`<div data-ui-component="Greeting" data-ui-props='{"name":"Ada"}'></div>`)
	h := NewHydrator(testRegistry())

	sess, err := h.Auto(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(sess.Mounts()) != 1 {
		t.Fatalf("mounts = %d", len(sess.Mounts()))
	}

	again, err := h.Auto(context.Background(), doc)
	if err != nil || again != sess {
		t.Error("Auto must be one-shot per document")
	}
}

func TestAutoWaitsForReadySignal(t *testing.T) {
	doc := NewDocument()
	h := NewHydrator(testRegistry())

	done := make(chan *Session, 1)
	go func() {
		sess, err := h.Auto(context.Background(), doc)
		if err != nil {
			t.Error(err)
		}
		done <- sess
	}()

	select {
	case <-done:
		t.Fatal("Auto returned before the document was ready")
	case <-time.After(20 * time.Millisecond):
	}

	if err := doc.Load(strings.NewReader(`<div data-ui-component="Greeting" data-ui-props='{"name":"late"}'></div>`)); err != nil {
		t.Fatal(err)
	}

	select {
	case sess := <-done:
		if sess == nil || len(sess.Mounts()) != 1 {
			t.Errorf("unexpected session %+v", sess)
		}
	case <-time.After(time.Second):
		t.Fatal("Auto did not run after the ready signal")
	}
}

func TestAutoHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHydrator(testRegistry()).Auto(ctx, NewDocument())
	if !errors.Is(err, ErrNotReady) || !errors.Is(err, context.Canceled) {
		t.Errorf("expected ErrNotReady wrapping context.Canceled, got %v", err)
	}
}
