package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	st := NewStore(time.Minute, nil, nil)

	sess := st.Create()
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, st.Count())

	got, ok := st.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = st.Get("missing")
	assert.False(t, ok)
}

func TestStoreGetOrCreate(t *testing.T) {
	st := NewStore(time.Minute, nil, nil)

	first, created := st.GetOrCreate("")
	assert.True(t, created)

	again, created := st.GetOrCreate(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	other, created := st.GetOrCreate("stale-id")
	assert.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, 2, st.Count())
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	st := NewStore(20*time.Millisecond, nil, nil)
	sess := st.Create()

	assert.Eventually(t, func() bool {
		_, ok := st.Get(sess.ID)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestStoreDelete(t *testing.T) {
	st := NewStore(time.Minute, nil, nil)
	sess := st.Create()

	st.Delete(sess.ID)
	assert.Equal(t, 0, st.Count())
}

func TestNewClipboard(t *testing.T) {
	assert.IsType(t, SystemClipboard{}, NewClipboard(true))
	assert.IsType(t, NoopClipboard{}, NewClipboard(false))
	assert.NoError(t, NoopClipboard{}.WriteAll("x"))
}
