package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/polytext/components/text"
	"github.com/vcrobe/polytext/vdom"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	{
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRender_DefaultShell(t *testing.T) {
	out, err := execute(t, "", "render")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<div id="root"><div class="App"><h1 class="class-with-lg-primary"`)
	assert.Contains(t, out, `for="someId">Label</label>`)
}

func TestRender_Fragment(t *testing.T) {
	out, err := execute(t, "", "render", "--fragment")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<div class="App">`))
	assert.NotContains(t, out, "<html")
	assert.Contains(t, out, ">Paragraph</p>")
}

func TestRender_MissingMount(t *testing.T) {
	_, err := execute(t, "", "render", "--mount-selector", "#nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, vdom.ErrMountNotFound)
}

func TestRender_ShellAndOutputFiles(t *testing.T) {
	dir := t.TempDir()
	shell := filepath.Join(dir, "index.html")
	output := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(shell, []byte(`<html><body><section id="app"></section></body></html>`), 0o644))

	out, err := execute(t, "", "render", "--shell-path", shell, "--mount-selector", "#app", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(written), `<section id="app"><div class="App">`)
}

func TestText_Command(t *testing.T) {
	out, err := execute(t, "", "text", "--variant", "label", "--for", "someId", "--size", "sm", "--color", "secondary", "Label")
	require.NoError(t, err)
	assert.Equal(t,
		`<label class="class-with-sm-secondary" data-color="secondary" data-size="sm" for="someId">Label</label>`+"\n",
		out)

	out, err = execute(t, "", "text", "--variant", "heading", "--size", "large", "Big", "title")
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 class="class-with-lg-primary"`)
	assert.Contains(t, out, ">Big title</h1>")
}

func TestText_InvalidVariant(t *testing.T) {
	_, err := execute(t, "", "text", "--variant", "marquee", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, text.ErrInvalidProps)
}

func TestSpecimens_Stdin(t *testing.T) {
	yaml := "specimens:\n  - variant: h2\n    size: sm\n    text: Small heading\n  - variant: span\n    size: lg\n    color: secondary\n    text: Big span\n"

	out, err := execute(t, yaml, "specimens", "-", "--fragment")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="specimens">`)
	assert.Contains(t, out, ">Small heading</h2>")
	assert.Contains(t, out, `<span class="class-with-lg-secondary"`)
}

func TestSpecimens_InvalidEntry(t *testing.T) {
	_, err := execute(t, "specimens:\n  - variant: blink\n    size: sm\n", "specimens", "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, text.ErrInvalidProps)
}
