package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/logger"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/session"
)

const (
	SessionCookieName = "imageai_session"
	SessionHeader     = "X-Session-ID"

	cookieSessionIDKey = "session_id"
	sessionContextKey  = "session"
)

// NewCookieStore creates the signed cookie store that carries the session id
func NewCookieStore(secret string, ttl time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.Path = "/"
	store.Options.MaxAge = int(ttl.Seconds())
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// Sessions resolves the builder session for the request. The id comes from the
// X-Session-ID header or the signed cookie; unknown or expired ids get a fresh session.
func Sessions(cookies sessions.Store, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := cookies.Get(c.Request, SessionCookieName)
		if err != nil {
			// Tampered or rotated cookie; gorilla still hands back a new one
			logger.Debug("Discarding invalid session cookie", logger.Fields{
				"error": err.Error(),
			})
		}

		id := c.GetHeader(SessionHeader)
		if id == "" {
			id, _ = cookie.Values[cookieSessionIDKey].(string)
		}

		sess, created := store.GetOrCreate(id)
		if created || cookie.Values[cookieSessionIDKey] != sess.ID {
			cookie.Values[cookieSessionIDKey] = sess.ID
			if err := cookie.Save(c.Request, c.Writer); err != nil {
				logger.Warn("Failed to save session cookie", logger.Fields{
					"session_id": sess.ID,
					"error":      err.Error(),
				})
			}
		}
		if created {
			logger.Debug("Session created", logger.Fields{"session_id": sess.ID})
		}

		c.Header(SessionHeader, sess.ID)
		c.Set(logger.SessionIDKey, sess.ID)
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session resolved by Sessions
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
