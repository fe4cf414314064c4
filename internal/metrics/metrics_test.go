package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudWatchDisabledOutsideProduction(t *testing.T) {
	c, err := NewClient(context.Background(), "development", true)
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	c, err = NewClient(context.Background(), "production", false)
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	// Disabled clients drop every metric
	c.RecordAPIRequest("/api/v1/session", 200, time.Millisecond)
	c.RecordPromptCopied(true)
	c.RecordTokenUsage("gpt-4.1-mini", 10, 6, 4)
	c.RecordOptimization(time.Second, true)
	assert.NoError(t, c.putMetric("X", 1, "Count", nil))
}

func TestNilClientsAreSafe(t *testing.T) {
	var cw *Client
	assert.False(t, cw.Enabled())
	cw.RecordPromptCopied(false)

	var sm *SentryMetrics
	sm.RecordAPIRequest(context.Background(), "/", 200, time.Millisecond)
	sm.RecordOptimization(context.Background(), time.Millisecond, false)
}

func TestDimensions(t *testing.T) {
	c := &Client{environment: "staging"}
	dims := c.dimensions("Model", "gemini-2.5-flash")
	require.Len(t, dims, 2)
	assert.Equal(t, "Model", *dims[0].Name)
	assert.Equal(t, "gemini-2.5-flash", *dims[0].Value)
	assert.Equal(t, "staging", *dims[1].Value)
}

func TestBoolToString(t *testing.T) {
	assert.Equal(t, "true", boolToString(true))
	assert.Equal(t, "false", boolToString(false))
}
