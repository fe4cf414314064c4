package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/prompt"
)

func TestBuilderPageEscapesContent(t *testing.T) {
	var buf bytes.Buffer
	err := BuilderPage(PageData{
		SessionID: "abc",
		Result: prompt.Result{
			Subject:   "A <b>knight</b>",
			Prompt:    "A <b>knight</b>.",
			CharCount: 17,
			Previews:  map[string]string{"subjects.1.age": "30s"},
		},
		Categories: map[string][]string{"art_styles": {"Anime", "Pixel \"art\""}},
		Optimizer:  true,
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "A &lt;b&gt;knight&lt;/b&gt;.")
	assert.NotContains(t, html, "<b>knight</b>")
	assert.Contains(t, html, "17 chars")
	assert.Contains(t, html, `data-field="subjects.1.age"`)
	assert.Contains(t, html, "art styles")
	assert.Contains(t, html, `id="optimize"`)
}

func TestBuilderPageEmptyPrompt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BuilderPage(PageData{}).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "Start selecting options")
	assert.NotContains(t, html, `id="optimize"`)
	assert.NotContains(t, html, `id="previews"`)
}
