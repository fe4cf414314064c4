package templates

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/prompt"
)

// PageData is everything the builder page shows
type PageData struct {
	SessionID  string
	Result     prompt.Result
	Categories map[string][]string
	Optimizer  bool
}

// htmlWriter keeps the first write error so components can write unconditionally
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) rawf(format string, args ...interface{}) {
	hw.raw(fmt.Sprintf(format, args...))
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// Layout wraps body in the shared document shell
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text(title)
		hw.raw(`</title><link rel="stylesheet" href="/static/app.css"></head><body>`)
		if hw.err != nil {
			return hw.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`<script src="/static/app.js" defer></script></body></html>`)
		return hw.err
	})
}

// BuilderPage renders the prompt builder with the current derived prompt
func BuilderPage(data PageData) templ.Component {
	return Layout("ImageAI Prompt Builder", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.rawf(`<main id="builder" data-session-id="%s">`, templ.EscapeString(data.SessionID))
		hw.raw(`<h1>ImageAI Prompt Builder</h1>`)

		hw.raw(`<section id="prompt"><h2>Prompt</h2>`)
		if data.Result.Prompt == "" {
			hw.raw(`<p class="empty">Start selecting options to build your prompt.</p>`)
		} else {
			hw.raw(`<pre id="prompt-text">`)
			hw.text(data.Result.Prompt)
			hw.raw(`</pre>`)
		}
		hw.rawf(`<p class="char-count">%d chars</p>`, data.Result.CharCount)
		hw.raw(`<button type="button" id="copy">Copy</button>`)
		if data.Optimizer {
			hw.raw(`<button type="button" id="optimize">Optimize</button>`)
		}
		hw.raw(`</section>`)

		hw.raw(`<section id="composers"><h2>Parts</h2><dl>`)
		for _, part := range []struct{ label, value string }{
			{"Subject", data.Result.Subject},
			{"Scene", data.Result.Scene},
			{"Style", data.Result.Style},
			{"Tool parameters", data.Result.ToolParams},
		} {
			hw.raw(`<dt>`)
			hw.text(part.label)
			hw.raw(`</dt><dd>`)
			hw.text(part.value)
			hw.raw(`</dd>`)
		}
		hw.raw(`</dl></section>`)

		if len(data.Result.Previews) > 0 {
			hw.raw(`<section id="previews"><h2>Selections</h2><ul>`)
			for _, key := range sortedKeys(data.Result.Previews) {
				hw.rawf(`<li data-field="%s">`, templ.EscapeString(key))
				hw.text(data.Result.Previews[key])
				hw.raw(`</li>`)
			}
			hw.raw(`</ul></section>`)
		}

		hw.raw(`<section id="catalog"><h2>Options</h2>`)
		for _, name := range sortedKeys(data.Categories) {
			hw.rawf(`<fieldset data-category="%s"><legend>`, templ.EscapeString(name))
			hw.text(strings.ReplaceAll(name, "_", " "))
			hw.raw(`</legend>`)
			for _, option := range data.Categories[name] {
				hw.rawf(`<button type="button" class="pill" data-value="%s">`, templ.EscapeString(option))
				hw.text(option)
				hw.raw(`</button>`)
			}
			hw.raw(`</fieldset>`)
		}
		hw.raw(`</section></main>`)
		return hw.err
	}))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
