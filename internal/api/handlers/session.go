package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apimiddleware "github.com/Conceptual-Machines/imageai-prompt-builder/internal/api/middleware"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/logger"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/metrics"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/session"
)

// SessionHandler exposes the builder state of the caller's session
type SessionHandler struct {
	sentry     *metrics.SentryMetrics
	cloudwatch *metrics.Client
}

func NewSessionHandler(sentryMetrics *metrics.SentryMetrics, cloudwatch *metrics.Client) *SessionHandler {
	return &SessionHandler{
		sentry:     sentryMetrics,
		cloudwatch: cloudwatch,
	}
}

type MainTextRequest struct {
	Text *string `json:"text" binding:"required"`
}

type SubjectCountRequest struct {
	Count *int `json:"count" binding:"required"`
}

type ToggleRequest struct {
	Item string `json:"item" binding:"required"`
}

// currentSession aborts with 500 when the session middleware did not run
func currentSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := apimiddleware.CurrentSession(c)
	if !ok {
		logger.Error("Session missing from request context", nil, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgNoSession})
		return nil, false
	}
	return sess, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   msgInvalidBody,
			"details": err.Error(),
		})
		return false
	}
	return true
}

func subjectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidSubjectID})
		return 0, false
	}
	return id, true
}

// respondSessionError maps session errors to 400; they are all structural
func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSubjectNotFound),
		errors.Is(err, session.ErrUnknownStyleField),
		errors.Is(err, session.ErrUnknownTool),
		errors.Is(err, session.ErrUnknownModel):
		logger.Warn("Rejected session update", logger.WithContext(c).With(logger.Fields{
			"error": err.Error(),
		}))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Session update failed", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// GetState returns the full builder state
func (h *SessionHandler) GetState(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID,
		"state":      sess.State(),
		"copied":     sess.Copied(),
	})
}

// SetMainText replaces the main text
func (h *SessionHandler) SetMainText(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req MainTextRequest
	if !bindJSON(c, &req) {
		return
	}
	sess.SetMainText(*req.Text)
	c.JSON(http.StatusOK, gin.H{
		"main_text": *req.Text,
		"derived":   sess.Derive(),
	})
}

// SetSubjectCount resizes the subject list. Out of range counts are clamped.
func (h *SessionHandler) SetSubjectCount(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req SubjectCountRequest
	if !bindJSON(c, &req) {
		return
	}
	sess.SetSubjectCount(*req.Count)
	state := sess.State()
	c.JSON(http.StatusOK, gin.H{
		"subject_count": state.SubjectCount,
		"subjects":      state.Subjects,
		"derived":       sess.Derive(),
	})
}

// UpdateSubject patches one subject
func (h *SessionHandler) UpdateSubject(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := subjectID(c)
	if !ok {
		return
	}
	var patch session.SubjectPatch
	if !bindJSON(c, &patch) {
		return
	}
	sub, err := sess.UpdateSubject(id, patch)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subject": sub,
		"derived": sess.Derive(),
	})
}

// ToggleClothing adds or removes a clothing preset on a subject
func (h *SessionHandler) ToggleClothing(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := subjectID(c)
	if !ok {
		return
	}
	var req ToggleRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := sess.ToggleClothing(id, req.Item)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subject": sub,
		"derived": sess.Derive(),
	})
}

// UpdateStyle patches the style settings
func (h *SessionHandler) UpdateStyle(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var patch session.StylePatch
	if !bindJSON(c, &patch) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"style":   sess.UpdateStyle(patch),
		"derived": sess.Derive(),
	})
}

// ToggleStyle toggles a preset on art_style or effects
func (h *SessionHandler) ToggleStyle(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req ToggleRequest
	if !bindJSON(c, &req) {
		return
	}
	style, err := sess.ToggleStyle(c.Param("field"), req.Item)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"style":   style,
		"derived": sess.Derive(),
	})
}

// UpdateTool patches the tool settings
func (h *SessionHandler) UpdateTool(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var patch session.ToolPatch
	if !bindJSON(c, &patch) {
		return
	}
	tool, err := sess.UpdateTool(patch)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tool":    tool,
		"derived": sess.Derive(),
	})
}

// SetGroupInteraction stores how subjects interact. Ignored with one subject.
func (h *SessionHandler) SetGroupInteraction(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var patch session.SelectionPatch
	if !bindJSON(c, &patch) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group_interaction": sess.SetGroupInteraction(patch),
		"derived":           sess.Derive(),
	})
}

// Reset restores the initial state
func (h *SessionHandler) Reset(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Reset()
	logger.Info("Session reset", logger.WithContext(c))
	c.JSON(http.StatusOK, gin.H{
		"state":   sess.State(),
		"derived": sess.Derive(),
	})
}

// GetPrompt returns every composer output, the full prompt and field previews
func (h *SessionHandler) GetPrompt(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	result := sess.Derive()
	h.sentry.RecordPromptDerived(c.Request.Context(), result.CharCount, result.ToolParams != "")
	c.JSON(http.StatusOK, result)
}

// Copy writes the prompt to the clipboard collaborator
func (h *SessionHandler) Copy(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	text, copied := sess.Copy()
	h.cloudwatch.RecordPromptCopied(copied)
	c.JSON(http.StatusOK, gin.H{
		"prompt": text,
		"copied": copied,
	})
}
