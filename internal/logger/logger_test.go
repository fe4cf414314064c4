package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFormatFieldsSorted(t *testing.T) {
	got := formatFields(Fields{"b": 2, "a": "x", "c": 1.5})
	assert.Equal(t, "{a=x, b=2, c=1.50}", got)
	assert.Equal(t, "", formatFields(nil))
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	c.Set(RequestIDKey, "req-1")

	fields := WithContext(c)
	assert.Equal(t, "req-1", fields[RequestIDKey])
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.NotContains(t, fields, SessionIDKey)

	c.Set(SessionIDKey, "sess-1")
	assert.Equal(t, "sess-1", WithContext(c)[SessionIDKey])
}

func TestFieldsWith(t *testing.T) {
	base := Fields{"a": 1}
	merged := base.With(Fields{"b": 2})

	assert.Equal(t, Fields{"a": 1, "b": 2}, merged)
	assert.Len(t, base, 1)
}
