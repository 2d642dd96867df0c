package hxui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry([]Descriptor{nester, greeting})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if got := strings.Join(reg.Names(), ","); got != "Greeting,Nester" {
		t.Errorf("Names() = %q", got)
	}
	if _, ok := reg.Lookup("Greeting"); !ok {
		t.Error("Lookup(Greeting) failed")
	}
	if _, ok := reg.Lookup("greeting"); ok {
		t.Error("lookup must be case sensitive")
	}
	if reg.Codec().HasKey() {
		t.Error("registry without signing key should be JSON-only")
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Descriptor{greeting, Define("Greeting", renderGreeting)})
	if !errors.Is(err, ErrDuplicateComponent) {
		t.Fatalf("expected ErrDuplicateComponent, got %v", err)
	}

	_, err = NewRegistry([]Descriptor{Define("", renderGreeting)})
	if !errors.Is(err, ErrDuplicateComponent) {
		t.Fatalf("expected error for empty name, got %v", err)
	}
}

func TestMustRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate name")
		}
	}()
	MustRegistry([]Descriptor{greeting, greeting})
}

func TestNamesReturnsCopy(t *testing.T) {
	reg := testRegistry()
	names := reg.Names()
	names[0] = "Mutated"
	if reg.Names()[0] == "Mutated" {
		t.Error("Names() must not expose internal state")
	}
}

func TestRegistryBuild(t *testing.T) {
	reg := testRegistry()

	tests := []struct {
		name    string
		comp    string
		payload string
		check   func(error) bool
		html    string
	}{
		{"valid", "Greeting", `{"name":"Ada"}`, nil, `<p class="greeting warm">Hello, Ada</p>`},
		{"explicit default", "Greeting", `{"name":"Ada","tone":"warm"}`, nil, `<p class="greeting warm">Hello, Ada</p>`},
		{"unknown fields ignored", "Greeting", `{"name":"Ada","extra":1}`, nil, `<p class="greeting warm">Hello, Ada</p>`},
		{"missing name", "", `{}`, func(err error) bool { return errors.Is(err, ErrMissingName) }, ""},
		{"unknown component", "Nope", `{}`, IsUnknownComponent, ""},
		{"malformed json", "Greeting", `{"name":`, IsInvalidProps, ""},
		{"wrong type", "Greeting", `{"name":3}`, IsInvalidProps, ""},
		{"required missing", "Greeting", `{}`, IsInvalidProps, ""},
		{"empty payload fails required", "Greeting", ``, IsInvalidProps, ""},
		{"bad enum", "Greeting", `{"name":"Ada","tone":"hot"}`, IsInvalidProps, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := reg.Build(tt.comp, tt.payload)
			if tt.check != nil {
				if err == nil || !tt.check(err) {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			var buf bytes.Buffer
			if err := c.Render(context.Background(), &buf); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if buf.String() != tt.html {
				t.Errorf("got %q, want %q", buf.String(), tt.html)
			}
		})
	}
}

func TestValidationMessageUsesWireNames(t *testing.T) {
	_, err := testRegistry().Build("Greeting", `{"tone":"hot"}`)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "name failed validation for tag 'required'") {
		t.Errorf("message should name the wire field: %s", msg)
	}
	if !strings.Contains(msg, "tone failed validation for tag 'oneof'") {
		t.Errorf("message should list every failing field: %s", msg)
	}
}

func TestPlaceholder(t *testing.T) {
	reg := testRegistry()

	tests := []struct {
		name  string
		props any
		want  string
	}{
		{"omits unset optional fields", greetingProps{Name: "Ada"}, `data-ui-props="{&#34;name&#34;:&#34;Ada&#34;}"`},
		{"nil props", nil, `data-ui-props="{}"`},
		{"escapes markup", greetingProps{Name: `<b>"x"</b>`}, `\u003cb\u003e\&#34;x\&#34;`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := reg.Placeholder("Greeting", tt.props).Render(context.Background(), &buf); err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(buf.String(), `<div data-ui-component="Greeting" `) {
				t.Errorf("unexpected element: %s", buf.String())
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("%s does not contain %s", buf.String(), tt.want)
			}
		})
	}
}

func TestPlaceholderCarriesChildren(t *testing.T) {
	reg := testRegistry()
	inner := reg.Placeholder("Greeting", greetingProps{Name: "inner"})
	ctx := templ.WithChildren(context.Background(), inner)

	var buf bytes.Buffer
	if err := reg.Placeholder("Greeting", greetingProps{Name: "outer"}).Render(ctx, &buf); err != nil {
		t.Fatal(err)
	}
	want := PlaceholderHTML("Greeting", `{"name":"outer"}`)
	want = strings.TrimSuffix(want, "</div>") + PlaceholderHTML("Greeting", `{"name":"inner"}`) + "</div>"
	if buf.String() != want {
		t.Errorf("got %s\nwant %s", buf.String(), want)
	}

	res, err := TestHydrate(reg, buf.String())
	if err != nil {
		t.Fatal(err)
	}
	// The outer greeting receives the inner placeholder as its children.
	if !res.HTMLContains(`Hello, outer</p><div data-ui-component="Greeting"`) {
		t.Errorf("children not carried into the mount: %s", res.HTML)
	}
	if res.MountCount() != 1 {
		t.Errorf("MountCount = %d, want 1", res.MountCount())
	}
}

func TestSealedPlaceholderNeedsKey(t *testing.T) {
	var buf bytes.Buffer
	err := testRegistry().SealedPlaceholder("Greeting", greetingProps{Name: "Ada"}).Render(context.Background(), &buf)
	if !errors.Is(err, ErrNoKey) {
		t.Fatalf("expected ErrNoKey, got %v", err)
	}
}

func TestSealedPlaceholderRoundTrip(t *testing.T) {
	reg := MustRegistry([]Descriptor{greeting}, WithSigningKey([]byte("0123456789abcdef0123456789abcdef")))

	var buf bytes.Buffer
	if err := reg.SealedPlaceholder("Greeting", greetingProps{Name: "Ada", Tone: "cold"}).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "{") {
		t.Errorf("sealed payload should not be JSON: %s", buf.String())
	}

	res, err := TestHydrate(reg, buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if !res.HTMLContains(`<p class="greeting cold">Hello, Ada</p>`) {
		t.Errorf("sealed props not mounted: %s", res.HTML)
	}
}

func TestEncryptedPlaceholderRoundTrip(t *testing.T) {
	reg := MustRegistry([]Descriptor{greeting}, WithSigningKey([]byte("0123456789abcdef0123456789abcdef")))

	var buf bytes.Buffer
	if err := reg.EncryptedPlaceholder("Greeting", greetingProps{Name: "Ada"}).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Ada") {
		t.Errorf("encrypted payload leaks props: %s", buf.String())
	}

	res, err := TestHydrate(reg, buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if !res.HTMLContains("Hello, Ada") {
		t.Errorf("encrypted props not mounted: %s", res.HTML)
	}

	other := MustRegistry([]Descriptor{greeting}, WithSigningKey([]byte("another-key-another-key-another!!")))
	res, err = TestHydrate(other, buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if res.SkipCount() != 1 || !IsDecryptionError(res.Session.Skipped()[0]) {
		t.Errorf("expected a decryption skip, got %v", res.Session.Skipped())
	}
}
