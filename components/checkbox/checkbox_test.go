package checkbox

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
	require.NoError(t, styles.Check("color", ringClasses, Colors()))
	require.NoError(t, styles.Check("kind", shapeClasses, []Kind{KindCheckbox, KindRadio}))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"defaults", Options{}, []string{"rounded", "text-[#4C28D3]"}},
		{"radio red", Options{Kind: KindRadio, Color: ColorRed}, []string{"rounded-full", "text-[#FF5050]"}},
		{"disabled", Options{Disabled: true}, []string{"cursor-not-allowed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.opts, "")
			require.NoError(t, err)
			for _, c := range tt.want {
				assert.Contains(t, got, c)
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	implicit, err := Resolve(Options{}, "")
	require.NoError(t, err)
	explicit, _ := Resolve(Defaults(), "")
	assert.Equal(t, explicit, implicit)
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve(Options{Color: "green"}, "")
	assert.True(t, errors.Is(err, styles.ErrInvalidOption))
}

func TestRenderRadio(t *testing.T) {
	var buf bytes.Buffer
	err := Radio(Props{ID: "plan-pro", Name: "plan", Value: "pro", Label: "Pro", Checked: true, HelperText: "Billed yearly"}).
		Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `type="radio" name="plan" value="pro" checked`)
	assert.Contains(t, html, `aria-describedby="plan-pro-help"`)
	assert.Contains(t, html, `<p id="plan-pro-help"`)
}
