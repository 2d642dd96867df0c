package badge

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui/lib/styles"
)

func TestTablesCoverEveryOption(t *testing.T) {
	require.NoError(t, styles.Check("size", sizeClasses, Sizes()))
	require.Len(t, variantClasses, len(Variants()))
	for _, v := range Variants() {
		require.NoError(t, styles.Check("accent", variantClasses[v], Accents()), "variant %s", v)
	}
}

func TestResolveEveryCombination(t *testing.T) {
	for _, v := range Variants() {
		for _, a := range Accents() {
			for _, s := range Sizes() {
				o := Options{Variant: v, Accent: a, Size: s}
				got, err := Resolve(o, "")
				require.NoError(t, err)
				assert.NotEmpty(t, got)

				again, _ := Resolve(o, "")
				assert.Equal(t, got, again)
			}
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	implicit, err := Resolve(Options{}, "")
	require.NoError(t, err)
	explicit, _ := Resolve(Defaults(), "")
	assert.Equal(t, explicit, implicit)
	assert.Contains(t, implicit, "bg-gray-100 text-gray-700")
}

func TestResolveRejectsUnknownAccent(t *testing.T) {
	_, err := Resolve(Options{Accent: "danger"}, "")
	assert.True(t, errors.Is(err, styles.ErrInvalidOption))
}

func TestRenderWithTextAndIcon(t *testing.T) {
	icon := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<svg></svg>")
		return err
	})

	var buf bytes.Buffer
	err := New(Props{Children: "New", Accent: AccentSuccess, ClassName: "ml-2", Icon: icon}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "bg-green-100 text-green-700 ml-2")
	assert.Contains(t, html, `<span class="flex-shrink-0"><svg></svg></span>`)
	assert.Contains(t, html, "<span>New</span>")
}

func TestRenderTemplChildren(t *testing.T) {
	child := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Beta")
		return err
	})
	ctx := templ.WithChildren(context.Background(), child)

	var buf bytes.Buffer
	require.NoError(t, New(Props{}).Render(ctx, &buf))
	assert.Contains(t, buf.String(), "<span>Beta</span>")
}
