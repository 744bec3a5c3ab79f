package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/polytext/runtime"
	"github.com/vcrobe/polytext/testcomponents"
	"github.com/vcrobe/polytext/vdom"
)

const shell = `<!doctype html><html><head><title>app</title></head><body><div id="root"></div></body></html>`

func TestApp_RenderTree(t *testing.T) {
	renderer := testcomponents.NewTestRenderer(&App{})
	root := renderer.RenderRoot()

	require.Equal(t, "div", root.Tag)
	assert.Equal(t, "App", root.Attributes["class"])
	require.Len(t, root.Children, 3)
	assert.Equal(t, []string{"heading", "paragraph", "label"}, renderer.ChildKeys())

	want := []struct {
		tag, class, text string
	}{
		{"h1", "class-with-lg-primary", "Heading"},
		{"p", "class-with-md-primary", "Paragraph"},
		{"label", "class-with-sm-secondary", "Label"},
	}
	for i, w := range want {
		child := root.Children[i]
		assert.Equal(t, w.tag, child.Tag)
		assert.Equal(t, w.class, child.Attributes["class"])
		assert.Equal(t, w.text, child.TextContent())
	}

	forAttr, ok := root.Children[2].Attr("for")
	require.True(t, ok)
	assert.Equal(t, "someId", forAttr)

	_, ok = root.Children[0].Attr("for")
	assert.False(t, ok)
}

func TestApp_RenderIsPure(t *testing.T) {
	first := testcomponents.NewTestRenderer(&App{}).RenderRoot()
	second := testcomponents.NewTestRenderer(&App{}).RenderRoot()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("renders differ (-first +second):\n%s", diff)
	}
}

func TestBootstrap_IntoDocument(t *testing.T) {
	doc, err := vdom.ParseDocumentString(shell)
	require.NoError(t, err)

	mount, err := doc.Query(MountSelector)
	require.NoError(t, err)

	renderer, err := Bootstrap(mount)
	require.NoError(t, err)
	assert.True(t, renderer.Mounted())

	out := doc.String()
	assert.Contains(t, out, `<div id="root"><div class="App">`)
	assert.Contains(t, out, `<h1 class="class-with-lg-primary" data-color="primary" data-size="lg">Heading</h1>`)
	assert.Contains(t, out, `<p class="class-with-md-primary" data-color="primary" data-size="md">Paragraph</p>`)
	assert.Contains(t, out, `<label class="class-with-sm-secondary" data-color="secondary" data-size="sm" for="someId">Label</label>`)
	assert.Equal(t, 1, strings.Count(out, `class="App"`))
}

func TestBootstrap_MissingMount(t *testing.T) {
	renderer, err := Bootstrap(nil)
	require.Error(t, err)
	assert.Nil(t, renderer)
	assert.True(t, errors.Is(err, vdom.ErrMountNotFound))

	doc, err := vdom.ParseDocumentString(`<html><body><div id="other"></div></body></html>`)
	require.NoError(t, err)

	_, err = runtime.MountSelector(doc, MountSelector, &App{})
	assert.ErrorIs(t, err, vdom.ErrMountNotFound)
	assert.NotContains(t, doc.String(), "App")
}

func TestBootstrap_SecondMountRejected(t *testing.T) {
	doc, err := vdom.ParseDocumentString(shell)
	require.NoError(t, err)
	mount, err := doc.Query(MountSelector)
	require.NoError(t, err)

	renderer, err := Bootstrap(mount)
	require.NoError(t, err)

	err = renderer.Mount(&App{})
	assert.ErrorIs(t, err, runtime.ErrAlreadyMounted)
	assert.Equal(t, 1, strings.Count(doc.String(), `class="App"`))
}
