package prompt

import (
	"strings"
	"testing"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

func midjourneyState() models.State {
	state := models.NewState()
	state.Tool.Tool = models.ToolMidjourney
	return state
}

func TestToolParamsScenario(t *testing.T) {
	state := midjourneyState()
	state.Tool.Model = models.ModelLatest
	state.Tool.AspectRatio = "16:9"
	state.Tool.Chaos = 0
	state.Tool.Stylize = 50
	state.Tool.Repeat = 1

	if got := ToolParams(state); got != "--v 7 --ar 16:9 --s 50" {
		t.Fatalf("ToolParams() = %q, want %q", got, "--v 7 --ar 16:9 --s 50")
	}
}

func TestToolParamsCustomAspectRatio(t *testing.T) {
	state := midjourneyState()
	state.Tool.AspectRatio = models.AspectRatioCustom
	state.Tool.CustomAspectRatio = ""

	got := ToolParams(state)
	if strings.Contains(got, "--ar") {
		t.Fatalf("ToolParams() = %q, blank custom ratio must emit no aspect flag", got)
	}
	if got != "--v 7" {
		t.Fatalf("ToolParams() = %q, want %q", got, "--v 7")
	}

	state.Tool.CustomAspectRatio = "5:4"
	if got := ToolParams(state); got != "--v 7 --ar 5:4" {
		t.Fatalf("ToolParams() = %q, want %q", got, "--v 7 --ar 5:4")
	}
}

func TestToolParamsAllFlags(t *testing.T) {
	state := midjourneyState()
	state.Tool.Model = models.ModelNiji
	state.Tool.AspectRatio = "2:3"
	state.Tool.Chaos = 20
	state.Tool.Stylize = 250
	state.Tool.Weird = 1000
	state.Tool.Repeat = 4
	state.Tool.Tile = true

	want := "--niji --ar 2:3 --c 20 --s 250 --w 1000 --r 4 --tile"
	if got := ToolParams(state); got != want {
		t.Fatalf("ToolParams() = %q, want %q", got, want)
	}
}

func TestToolParamsOmitsZero(t *testing.T) {
	state := midjourneyState()
	state.Tool.Model = models.ModelLegacy

	got := ToolParams(state)
	for _, flag := range []string{"--c", "--s", "--w", "--r", "--tile"} {
		if strings.Contains(got, flag) {
			t.Errorf("ToolParams() = %q, must not contain %s", got, flag)
		}
	}
	if !strings.HasPrefix(got, "--v 6") {
		t.Errorf("ToolParams() = %q, want legacy model flag first", got)
	}
}

func TestToolParamsOnlyForMidjourney(t *testing.T) {
	state := models.NewState()
	state.Tool.Tool = models.ToolChat
	state.Tool.Stylize = 100
	state.Tool.Tile = true

	if got := ToolParams(state); got != "" {
		t.Fatalf("ToolParams() = %q, want empty for chat tool", got)
	}
}

func TestModelFlag(t *testing.T) {
	tests := map[models.ModelVersion]string{
		models.ModelLatest: "--v 7",
		models.ModelLegacy: "--v 6",
		models.ModelNiji:   "--niji",
		"":                 "--v 7",
	}
	for model, want := range tests {
		if got := ModelFlag(model); got != want {
			t.Errorf("ModelFlag(%q) = %q, want %q", model, got, want)
		}
	}
}
