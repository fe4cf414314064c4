package prompt

import (
	"strings"
	"testing"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

func knight() models.Subject {
	sub := models.NewSubject(1)
	sub.Name = "A knight"
	sub.Age = models.Selection{Preset: "30s"}
	sub.Clothing.Toggle("Suit")
	sub.Action = models.Selection{Preset: "Standing relaxed"}
	return sub
}

func TestEmptyStateDerivesNothing(t *testing.T) {
	state := models.NewState()

	checks := map[string]string{
		"subject":     SubjectClause(state),
		"scene":       SceneClause(state),
		"style":       StyleClause(state),
		"tool params": ToolParams(state),
		"prompt":      FullPrompt(state),
	}
	for name, got := range checks {
		if got != "" {
			t.Errorf("%s = %q, want empty", name, got)
		}
	}
}

func TestSubjectScenario(t *testing.T) {
	state := models.NewState()
	state.Subjects[0] = knight()

	want := "A knight in their 30s wearing Suit, Standing relaxed"
	if got := SubjectClause(state); got != want {
		t.Fatalf("SubjectClause() = %q, want %q", got, want)
	}
	if got := FullPrompt(state); got != want+"." {
		t.Fatalf("FullPrompt() = %q, want %q", got, want+".")
	}
}

func TestGroupInteractionScenario(t *testing.T) {
	state := models.NewState()
	state.ResizeSubjects(2)
	state.Subjects[0].Name = "A knight"
	state.Subjects[1].Name = "A dragon"
	state.GroupInteraction = models.Selection{Preset: "Fighting"}

	want := "A knight AND A dragon ARE Fighting"
	if got := SubjectClause(state); got != want {
		t.Fatalf("SubjectClause() = %q, want %q", got, want)
	}
	if got := FullPrompt(state); got != want+"." {
		t.Fatalf("FullPrompt() = %q, want %q", got, want+".")
	}
}

func TestGroupInteractionMergesPresetAndCustom(t *testing.T) {
	state := models.NewState()
	state.ResizeSubjects(2)
	state.Subjects[0].Name = "A"
	state.Subjects[1].Name = "B"
	state.GroupInteraction = models.Selection{Preset: "Hugging", Custom: "under the rain"}

	want := "A AND B ARE Hugging, under the rain"
	if got := SubjectClause(state); got != want {
		t.Fatalf("SubjectClause() = %q, want %q", got, want)
	}
}

func TestMultipleSubjectsWithoutInteraction(t *testing.T) {
	state := models.NewState()
	state.ResizeSubjects(3)
	state.Subjects[0].Name = "A knight"
	state.Subjects[2].Action = models.Selection{Custom: "sleeping"}

	want := "A knight. Subject, sleeping"
	if got := SubjectClause(state); got != want {
		t.Fatalf("SubjectClause() = %q, want %q", got, want)
	}
}

func TestGroupInteractionNeedsTwoContentClauses(t *testing.T) {
	state := models.NewState()
	state.ResizeSubjects(2)
	state.Subjects[0].Name = "A knight"
	state.GroupInteraction = models.Selection{Preset: "Fighting"}

	if got := SubjectClause(state); got != "A knight" {
		t.Fatalf("SubjectClause() = %q, want %q", got, "A knight")
	}
}

func TestGroupInteractionIgnoredForSingleSubject(t *testing.T) {
	state := models.NewState()
	state.Subjects[0].Name = "A knight"
	// Bypass ResizeSubjects to prove the composer gates on count too
	state.GroupInteraction = models.Selection{Preset: "Fighting"}

	got := FullPrompt(state)
	if strings.Contains(got, "Fighting") || strings.Contains(got, " ARE ") {
		t.Fatalf("FullPrompt() = %q, group interaction must not appear", got)
	}
}

func TestSubjectInclusion(t *testing.T) {
	tests := []struct {
		name string
		sub  models.Subject
		want string
		ok   bool
	}{
		{
			name: "action only",
			sub:  models.Subject{ID: 1, Action: models.Selection{Preset: "Running"}},
			want: "Subject, Running",
			ok:   true,
		},
		{
			name: "custom clothing only",
			sub:  models.Subject{ID: 1, Clothing: models.MultiSelection{Custom: "a red cape"}},
			want: "Subject wearing a red cape",
			ok:   true,
		},
		{
			name: "whitespace is empty",
			sub:  models.Subject{ID: 1, Name: "   ", Age: models.Selection{Custom: "  "}},
			ok:   false,
		},
		{
			name: "all fields",
			sub: models.Subject{
				ID:         1,
				Name:       " Alice ",
				Age:        models.Selection{Preset: "20s"},
				Expression: models.Selection{Preset: "Smiling", Custom: "softly"},
				Clothing:   models.MultiSelection{Presets: models.NewOrderedSet("Jeans", "Hoodie"), Custom: "sneakers"},
				Action:     models.Selection{Preset: "Walking"},
			},
			want: "Alice in their 20s with a Smiling softly expression wearing Jeans and Hoodie and sneakers, Walking",
			ok:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DescribeSubject(tt.sub)
			if ok != tt.ok {
				t.Fatalf("DescribeSubject() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("DescribeSubject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmptySubjectAbsentRegardlessOfCount(t *testing.T) {
	state := models.NewState()
	state.ResizeSubjects(3)
	state.Subjects[1].Name = "A wizard"

	if got := SubjectClause(state); got != "A wizard" {
		t.Fatalf("SubjectClause() = %q, want %q", got, "A wizard")
	}
}

func TestSceneClause(t *testing.T) {
	state := models.NewState()
	state.Style.SceneDescription = "  a quiet harbor at dawn "
	state.Style.Environment = models.Selection{Preset: "Forest"}
	state.Style.Weather = models.Selection{Preset: "Foggy", Custom: "light drizzle"}
	state.Style.Material = models.Selection{Custom: "glass"}

	want := "a quiet harbor at dawn, set in Forest, Foggy light drizzle, made of glass"
	if got := SceneClause(state); got != want {
		t.Fatalf("SceneClause() = %q, want %q", got, want)
	}
}

func TestStyleClauseOrder(t *testing.T) {
	state := models.NewState()
	s := &state.Style
	s.Effects.Toggle("Bokeh")
	s.Quality = models.Selection{Preset: "8K"}
	s.CameraAngle = models.Selection{Preset: "Low angle"}
	s.ShotType = models.Selection{Preset: "Close-up"}
	s.Lighting = models.Selection{Preset: "Golden hour"}
	s.Composition = models.Selection{Preset: "Rule of thirds"}
	s.ColorPalette = models.Selection{Preset: "Pastel"}
	s.ArtStyle.Toggle("Anime")
	s.ArtStyle.Custom = "Ukiyo-e"
	s.FilmType = models.Selection{Preset: "Kodak Portra 400"}

	want := "shot on Kodak Portra 400, Anime, Ukiyo-e style, in Pastel color palette, " +
		"with Rule of thirds, Golden hour lighting, Close-up, Low angle, 8K, Bokeh"
	if got := StyleClause(state); got != want {
		t.Fatalf("StyleClause() = %q, want %q", got, want)
	}
}

func TestMainTextOnlyScenario(t *testing.T) {
	state := models.NewState()
	state.MainText = "a red balloon"

	if got := FullPrompt(state); got != "a red balloon" {
		t.Fatalf("FullPrompt() = %q, want %q", got, "a red balloon")
	}

	state.MainText = "  a red balloon  "
	if got := FullPrompt(state); got != "a red balloon" {
		t.Fatalf("FullPrompt() = %q, main text must be trimmed", got)
	}
}

func TestFullPromptOrder(t *testing.T) {
	state := models.NewState()
	state.Subjects[0] = knight()
	state.Style.Environment = models.Selection{Preset: "Castle"}
	state.Style.Lighting = models.Selection{Preset: "Moody"}
	state.MainText = "cinematic"
	state.Tool.Tool = models.ToolMidjourney
	state.Tool.AspectRatio = "16:9"

	want := "A knight in their 30s wearing Suit, Standing relaxed. set in Castle. Moody lighting. cinematic --v 7 --ar 16:9"
	if got := FullPrompt(state); got != want {
		t.Fatalf("FullPrompt() = %q, want %q", got, want)
	}
}

func TestFullPromptIsIdempotent(t *testing.T) {
	state := models.NewState()
	state.Subjects[0] = knight()
	state.Style.ArtStyle.Toggle("Watercolor")
	state.Tool.Tool = models.ToolMidjourney

	first := FullPrompt(state)
	second := FullPrompt(state)
	if first != second {
		t.Fatalf("FullPrompt() not idempotent: %q vs %q", first, second)
	}
}

func TestDeriveResult(t *testing.T) {
	state := models.NewState()
	state.Subjects[0] = knight()
	state.Style.ArtStyle.Toggle("Anime")
	state.Style.ArtStyle.Custom = "Manga"

	r := Derive(state)
	if r.Prompt != FullPrompt(state) {
		t.Errorf("Derive().Prompt = %q, want %q", r.Prompt, FullPrompt(state))
	}
	if r.CharCount != len(r.Prompt) {
		t.Errorf("Derive().CharCount = %d, want %d", r.CharCount, len(r.Prompt))
	}
	if got := r.Previews["style.art_style"]; got != "Anime, Manga" {
		t.Errorf("art style preview = %q, want %q", got, "Anime, Manga")
	}
	if got := r.Previews["subjects.1.age"]; got != "30s" {
		t.Errorf("age preview = %q, want %q", got, "30s")
	}
	if _, ok := r.Previews["style.quality"]; ok {
		t.Error("empty fields must not have a preview")
	}
}

func TestBuilderWithoutCache(t *testing.T) {
	builder := NewPromptBuilder(nil)
	state := models.NewState()
	state.MainText = "hello"

	if got := builder.Build(state).Prompt; got != "hello" {
		t.Fatalf("Build().Prompt = %q, want %q", got, "hello")
	}
}
