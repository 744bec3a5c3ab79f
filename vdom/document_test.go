package vdom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html><html><head></head><body><main><div id="root"><noscript>enable wasm</noscript></div></main></body></html>`

func TestDocument_QueryAndAppend(t *testing.T) {
	doc, err := ParseDocumentString(page)
	require.NoError(t, err)

	mount, err := doc.Query("#root")
	require.NoError(t, err)

	mount.Clear()
	require.NoError(t, mount.Append(Paragraph("hello", map[string]any{"class": "x"})))

	out := doc.String()
	assert.Contains(t, out, `<div id="root"><p class="x">hello</p></div>`)
	assert.NotContains(t, out, "noscript")
}

func TestDocument_QueryErrors(t *testing.T) {
	doc, err := ParseDocumentString(page)
	require.NoError(t, err)

	_, err = doc.Query("#missing")
	assert.True(t, errors.Is(err, ErrMountNotFound))

	_, err = doc.Query(".root")
	assert.ErrorIs(t, err, ErrUnsupportedSelector)

	_, err = doc.Query("#")
	assert.ErrorIs(t, err, ErrUnsupportedSelector)
}

func TestDocument_AppendEmptyTag(t *testing.T) {
	doc, err := ParseDocumentString(page)
	require.NoError(t, err)
	mount, err := doc.Query("#root")
	require.NoError(t, err)

	assert.ErrorIs(t, mount.Append(&VNode{}), ErrEmptyTag)
}

func TestDocument_Render(t *testing.T) {
	doc, err := ParseDocumentString(page)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, doc.Render(&b))
	assert.True(t, strings.HasPrefix(b.String(), "<!DOCTYPE html>"))
}
