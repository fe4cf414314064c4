package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/config"
)

func TestCalculateCost(t *testing.T) {
	cost := CalculateCost("gpt-4.1-mini", 1000, 1000)
	assert.InDelta(t, 0.002, cost, 1e-9)

	// Dated variants use their base model
	assert.Equal(t, PricingTable["gpt-4.1-mini"], PricingFor("gpt-4.1-mini-2025-04-14"))
	assert.Equal(t, PricingTable["gemini-2.5-flash"], PricingFor("gemini-2.5-flash-lite"))

	// Unknown models fall back to the default table entry
	assert.Equal(t, PricingTable[defaultPricingModel], PricingFor("mystery"))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.002000", FormatCost(0.002))
}

func TestDisabledLangfuseIsNoop(t *testing.T) {
	client := InitializeLangfuse(context.Background(), &config.Config{LangfuseEnabled: false})
	assert.False(t, client.IsEnabled())
	assert.Same(t, client, GetClient())

	trace := client.StartTrace(context.Background(), "prompt.optimize", "sess-1", nil)
	assert.False(t, trace.Enabled())

	gen := trace.Generation("optimize", nil)
	gen.LogResult("gpt-4.1-mini", "in", "out", 10, 5)
	gen.Fail(errors.New("boom"))
	gen.Finish()
	trace.Finish()
}
