package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

// Result holds every derived string for one state
type Result struct {
	Subject    string            `json:"subject"`
	Scene      string            `json:"scene"`
	Style      string            `json:"style"`
	ToolParams string            `json:"tool_params"`
	Prompt     string            `json:"prompt"`
	CharCount  int               `json:"char_count"`
	Previews   map[string]string `json:"previews"`
}

// FullPrompt assembles the final prompt: subject, scene and style clauses each
// closed with a period, then the main text and the tool parameters.
func FullPrompt(state models.State) string {
	return assemble(SubjectClause(state), SceneClause(state), StyleClause(state), state.MainText, ToolParams(state))
}

func assemble(subject, scene, style, mainText, params string) string {
	parts := make([]string, 0, 5)
	for _, c := range []string{subject, scene, style} {
		if c != "" {
			parts = append(parts, c+".")
		}
	}
	if text := strings.TrimSpace(mainText); text != "" {
		parts = append(parts, text)
	}
	if params != "" {
		parts = append(parts, params)
	}
	return strings.Join(parts, " ")
}

// Builder derives prompts, memoizing results when a cache is set
type Builder struct {
	cache *Cache
}

// NewPromptBuilder creates a new prompt builder. cache may be nil.
func NewPromptBuilder(cache *Cache) *Builder {
	return &Builder{cache: cache}
}

// Build derives every clause, the full prompt and the field previews
func (b *Builder) Build(state models.State) Result {
	if b.cache == nil {
		return Derive(state)
	}
	return b.cache.GetOrDerive(state)
}

// Derive computes a Result without memoization
func Derive(state models.State) Result {
	r := Result{
		Subject:    SubjectClause(state),
		Scene:      SceneClause(state),
		Style:      StyleClause(state),
		ToolParams: ToolParams(state),
		Previews:   Previews(state),
	}
	r.Prompt = assemble(r.Subject, r.Scene, r.Style, state.MainText, r.ToolParams)
	r.CharCount = utf8.RuneCountInString(r.Prompt)
	return r
}

// Previews returns the collapsed-section preview of every non-empty field.
// Subject fields are keyed "subjects.<id>.<field>".
func Previews(state models.State) map[string]string {
	out := make(map[string]string)
	put := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}

	for _, sub := range state.Subjects {
		prefix := fmt.Sprintf("subjects.%d.", sub.ID)
		put(prefix+"age", Preview(sub.Age))
		put(prefix+"expression", Preview(sub.Expression))
		put(prefix+"action", Preview(sub.Action))
		put(prefix+"clothing", PreviewMulti(sub.Clothing))
	}
	if state.SubjectCount > models.MinSubjects {
		put("group_interaction", Preview(state.GroupInteraction))
	}

	s := state.Style
	put("style.art_style", PreviewMulti(s.ArtStyle))
	put("style.quality", Preview(s.Quality))
	put("style.composition", Preview(s.Composition))
	put("style.shot_type", Preview(s.ShotType))
	put("style.camera_angle", Preview(s.CameraAngle))
	put("style.environment", Preview(s.Environment))
	put("style.lighting", Preview(s.Lighting))
	put("style.weather", Preview(s.Weather))
	put("style.material", Preview(s.Material))
	put("style.color_palette", Preview(s.ColorPalette))
	put("style.film_type", Preview(s.FilmType))
	put("style.effects", PreviewMulti(s.Effects))
	return out
}
