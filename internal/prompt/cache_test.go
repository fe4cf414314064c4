package prompt

import (
	"testing"
	"time"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

func TestCacheMemoizesByContent(t *testing.T) {
	c := NewCache(time.Minute)
	builder := NewPromptBuilder(c)

	state := models.NewState()
	state.MainText = "a red balloon"

	first := builder.Build(state)
	second := builder.Build(state.Clone())
	if first.Prompt != second.Prompt {
		t.Fatalf("cached prompt %q differs from %q", second.Prompt, first.Prompt)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("Stats() = %+v, want 1 hit and 1 miss", stats)
	}

	state.MainText = "a blue balloon"
	if got := builder.Build(state).Prompt; got != "a blue balloon" {
		t.Fatalf("Build().Prompt = %q after change", got)
	}
	if got := c.Stats().Entries; got != 2 {
		t.Fatalf("Entries = %d, want 2", got)
	}

	c.Flush()
	if got := c.Stats().Entries; got != 0 {
		t.Fatalf("Entries after Flush = %d, want 0", got)
	}
}

func TestStateKeyChangesWithState(t *testing.T) {
	a := models.NewState()
	b := models.NewState()

	ka, err := StateKey(a)
	if err != nil {
		t.Fatalf("StateKey() error: %v", err)
	}
	kb, _ := StateKey(b)
	if ka != kb {
		t.Fatal("equal states must hash equally")
	}

	b.Style.Effects.Toggle("Bokeh")
	kb, _ = StateKey(b)
	if ka == kb {
		t.Fatal("different states must hash differently")
	}
}
