package toggle

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui/lib/styles"
)

func TestTablesCoverEveryOption(t *testing.T) {
	require.NoError(t, styles.Check("accent", accentClasses, Accents()))
	for _, s := range Sizes() {
		d, ok := sizeDims[s]
		require.True(t, ok, "size %q", s)
		assert.NotEmpty(t, d.track)
		assert.NotEmpty(t, d.thumb)
		assert.NotEmpty(t, d.translate)
	}
}

func TestResolveState(t *testing.T) {
	off, err := Resolve(Options{})
	require.NoError(t, err)
	assert.Contains(t, off.Track, "bg-gray-300")
	assert.Contains(t, off.Thumb, "translate-x-0.5")

	on, err := Resolve(Options{Checked: true, Accent: AccentSuccess, Size: SizeSmall})
	require.NoError(t, err)
	assert.Contains(t, on.Track, "bg-green-600")
	assert.Contains(t, on.Track, "h-5 w-9")
	assert.Contains(t, on.Thumb, "translate-x-4")
}

func TestResolveDefaults(t *testing.T) {
	for _, checked := range []bool{false, true} {
		implicit, err := Resolve(Options{Checked: checked})
		require.NoError(t, err)
		d := Defaults()
		d.Checked = checked
		explicit, _ := Resolve(d)
		assert.Equal(t, explicit, implicit)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve(Options{Size: "huge"})
	assert.True(t, errors.Is(err, styles.ErrInvalidOption))
	_, err = Resolve(Options{Accent: "pink"})
	assert.True(t, errors.Is(err, styles.ErrInvalidOption))
}

func TestCheckedOverridesDefault(t *testing.T) {
	off := false
	assert.False(t, Props{Checked: &off, DefaultChecked: true}.On())
	assert.True(t, Props{DefaultChecked: true}.On())
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := New(Props{ID: "notify", Label: "Notifications", DefaultChecked: true}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `role="switch"`)
	assert.Contains(t, html, `aria-checked="true"`)
	assert.Contains(t, html, `aria-labelledby="notify-label"`)
	assert.Contains(t, html, `<span id="notify-label"`)
}
