package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestTrackingEchoesRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestTracking(nil, nil))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
	assert.Equal(t, "req-123", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRecoverWithSentry(t *testing.T) {
	router := gin.New()
	router.Use(RecoverWithSentry())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.PUT("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSessionsResolvesByHeaderAndCookie(t *testing.T) {
	store := session.NewStore(time.Minute, nil, nil)
	router := gin.New()
	router.Use(Sessions(NewCookieStore("secret", time.Hour, false), store))
	router.GET("/s", func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		require.True(t, ok)
		c.String(http.StatusOK, sess.ID)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/s", nil))
	id := rec.Body.String()
	require.NotEmpty(t, id)
	assert.Equal(t, id, rec.Header().Get(SessionHeader))

	// Header
	req := httptest.NewRequest(http.MethodGet, "/s", nil)
	req.Header.Set(SessionHeader, id)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Body.String())

	// Cookie from a different signing key is discarded
	foreign := httptest.NewRecorder()
	other := gin.New()
	other.Use(Sessions(NewCookieStore("other-secret", time.Hour, false), session.NewStore(time.Minute, nil, nil)))
	other.GET("/s", func(c *gin.Context) { c.Status(http.StatusOK) })
	other.ServeHTTP(foreign, httptest.NewRequest(http.MethodGet, "/s", nil))

	req = httptest.NewRequest(http.MethodGet, "/s", nil)
	for _, cookie := range foreign.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEqual(t, id, rec.Body.String())
	assert.Equal(t, 2, store.Count())
}

func TestCurrentSessionMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentSession(c)
	assert.False(t, ok)
}
