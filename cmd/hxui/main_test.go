package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in an empty working directory so no stray
// hxui.yaml is picked up.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2026-10-01"

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "2026-10-01")
}

func TestComponentsCommandListsNames(t *testing.T) {
	out, _, err := execute(t, "", "components")
	require.NoError(t, err)

	names := strings.Fields(out)
	assert.Len(t, names, 22)
	assert.Contains(t, names, "Button")
	assert.Contains(t, names, "HeroActions")
	assert.Contains(t, names, "Footer")
}

func TestRenderCommand(t *testing.T) {
	out, _, err := execute(t, "", "render", "Button", "--props", `{"label":"Save"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `<button type="button"`)
	assert.Contains(t, out, ">Save</button>")
}

func TestRenderCommandPropsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "props.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"children":"New","variant":"solid","accent":"success"}`), 0o600))

	out, _, err := execute(t, "", "render", "Badge", "--props-file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "New")
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown component", []string{"render", "Nope"}, "unknown component"},
		{"missing required prop", []string{"render", "Button"}, "label"},
		{"invalid enum", []string{"render", "Button", "--props", `{"label":"x","size":"huge"}`}, "invalid props"},
		{"malformed json", []string{"render", "Button", "--props", `{"label":`}, "not valid JSON"},
		{"both props flags", []string{"render", "Button", "--props", "{}", "--props-file", "x.json"}, "none of the others can be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPlaceholderCommand(t *testing.T) {
	out, _, err := execute(t, "", "placeholder", "Button", "--props", `{"label":"Save"}`)
	require.NoError(t, err)
	assert.Equal(t,
		`<div data-ui-component="Button" data-ui-props="{&#34;label&#34;:&#34;Save&#34;}"></div>`+"\n",
		out)
}

func TestPlaceholderCommandValidatesProps(t *testing.T) {
	_, _, err := execute(t, "", "placeholder", "Cta", "--props", `{"headline":"Hi"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid props")
}

func TestPlaceholderCommandSealedNeedsKey(t *testing.T) {
	_, _, err := execute(t, "", "placeholder", "Button", "--props", `{"label":"Save"}`, "--sealed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need props.signing_key")
}

func TestPlaceholderCommandSealed(t *testing.T) {
	t.Setenv("HXUI_PROPS_SIGNING_KEY", "0123456789abcdef0123")

	out, _, err := execute(t, "", "placeholder", "Button", "--props", `{"label":"Save"}`, "--sealed")
	require.NoError(t, err)
	assert.Contains(t, out, `data-ui-component="Button"`)
	assert.NotContains(t, out, "&#34;label&#34;")
}

func TestHydrateCommandFromStdin(t *testing.T) {
	page := `<html><body>
<div data-ui-component="Button" data-ui-props='{"label":"Save"}'></div>
<div data-ui-component="Missing"></div>
</body></html>`

	out, logs, err := execute(t, page, "hydrate", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, ">Save</button>")
	assert.Contains(t, out, `data-ui-mounted`)
	assert.Contains(t, logs, "hydrated")
	assert.Contains(t, logs, "Missing")
}

func TestHydrateCommandStrict(t *testing.T) {
	page := `<div data-ui-component="Missing"></div>`

	_, _, err := execute(t, page, "hydrate", "--strict", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 placeholder(s) skipped")
}

func TestHydrateCommandFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(file, []byte(
		`<main><div data-ui-component="Badge" data-ui-props='{"children":"beta"}'></div></main>`), 0o600))

	out, _, err := execute(t, "", "hydrate", "--strict", file)
	require.NoError(t, err)
	assert.Contains(t, out, "beta")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, _, err := execute(t, "", "components", "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
