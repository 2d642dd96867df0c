package alert

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui/lib/styles"
)

func TestEveryVariantHasToneAndIcon(t *testing.T) {
	require.Len(t, tones, len(Variants()))
	for _, v := range Variants() {
		r, err := Resolve(v, "")
		require.NoError(t, err, "variant %s", v)
		assert.NotEmpty(t, r.Root)
		assert.NotEmpty(t, r.Accent)
		assert.NotEmpty(t, r.IconWrap)
		assert.NotEmpty(t, r.Icon)
		assert.NotEmpty(t, r.Text)
		assert.NotEmpty(t, icons[v])

		again, _ := Resolve(v, "")
		assert.Equal(t, r, again)
	}
}

func TestResolveDefault(t *testing.T) {
	implicit, err := Resolve("", "")
	require.NoError(t, err)
	explicit, _ := Resolve(VariantInfo, "")
	assert.Equal(t, explicit, implicit)
}

func TestResolveUnknownVariant(t *testing.T) {
	_, err := Resolve("danger", "")
	assert.True(t, errors.Is(err, styles.ErrInvalidOption))
}

func TestRole(t *testing.T) {
	tests := []struct {
		variant Variant
		expect  string
	}{
		{"", ""},
		{VariantInfo, ""},
		{VariantSuccess, ""},
		{VariantNeutral, ""},
		{VariantWarning, "alert"},
		{VariantError, "alert"},
	}
	for _, tt := range tests {
		if got := Role(tt.variant); got != tt.expect {
			t.Errorf("Role(%q) = %q, want %q", tt.variant, got, tt.expect)
		}
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := New(Props{Title: "Heads up", Children: "Disk <almost> full", Variant: VariantWarning, Dismissible: true}).
		Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Heads up")
	assert.Contains(t, html, "Disk &lt;almost&gt; full")
	assert.Contains(t, html, `aria-label="Dismiss"`)
	assert.Contains(t, html, "border-amber-200")
}

func TestRenderOmitsOptionalParts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Props{Children: "Saved"}).Render(context.Background(), &buf))

	html := buf.String()
	assert.NotContains(t, html, "role=")
	assert.NotContains(t, html, "Dismiss")
	assert.NotContains(t, html, "font-semibold")
}
