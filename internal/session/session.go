package session

import (
	"errors"
	"sync"
	"time"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/logger"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/prompt"
)

// DefaultCopyAck is how long the copied acknowledgment stays visible
const DefaultCopyAck = 2 * time.Second

// Style fields that hold multi selections and accept toggles
const (
	StyleFieldArtStyle = "art_style"
	StyleFieldEffects  = "effects"
)

var (
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrUnknownStyleField = errors.New("unknown style field")
	ErrUnknownTool       = errors.New("unknown tool")
	ErrUnknownModel      = errors.New("unknown model version")
)

// Session owns one builder state. All mutation goes through its methods.
type Session struct {
	ID string

	mu        sync.Mutex
	state     models.State
	builder   *prompt.Builder
	clipboard Clipboard
	copyAck   time.Duration
	copied    bool
	copySeq   uint64
	copyTimer *time.Timer
	createdAt time.Time
}

// New creates a session with the initial empty state
func New(id string, builder *prompt.Builder, clipboard Clipboard) *Session {
	if builder == nil {
		builder = prompt.NewPromptBuilder(nil)
	}
	if clipboard == nil {
		clipboard = NoopClipboard{}
	}
	return &Session{
		ID:        id,
		state:     models.NewState(),
		builder:   builder,
		clipboard: clipboard,
		copyAck:   DefaultCopyAck,
		createdAt: time.Now(),
	}
}

// SetCopyAck overrides the acknowledgment duration
func (s *Session) SetCopyAck(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copyAck = d
}

// CreatedAt returns when the session was created
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// State returns a copy of the current state
func (s *Session) State() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetMainText replaces the free-text main field
func (s *Session) SetMainText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MainText = text
}

// SetSubjectCount resizes the subject list and returns the stored count
func (s *Session) SetSubjectCount(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ResizeSubjects(n)
	return s.state.SubjectCount
}

// UpdateSubject applies patch to the subject with the given id
func (s *Session) UpdateSubject(id int, patch SubjectPatch) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.state.Subject(id)
	if sub == nil {
		return models.Subject{}, ErrSubjectNotFound
	}
	patch.apply(sub)
	return sub.Clone(), nil
}

// ToggleClothing toggles a clothing preset on a subject
func (s *Session) ToggleClothing(id int, item string) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.state.Subject(id)
	if sub == nil {
		return models.Subject{}, ErrSubjectNotFound
	}
	sub.Clothing.Toggle(item)
	return sub.Clone(), nil
}

// UpdateStyle applies patch to the style settings
func (s *Session) UpdateStyle(patch StylePatch) models.StyleSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.state.Style)
	return s.state.Style.Clone()
}

// ToggleStyle toggles a preset on a multi-select style field
func (s *Session) ToggleStyle(field, item string) (models.StyleSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case StyleFieldArtStyle:
		s.state.Style.ArtStyle.Toggle(item)
	case StyleFieldEffects:
		s.state.Style.Effects.Toggle(item)
	default:
		return models.StyleSettings{}, ErrUnknownStyleField
	}
	return s.state.Style.Clone(), nil
}

// UpdateTool applies patch to the tool settings, clamping numeric values
func (s *Session) UpdateTool(patch ToolPatch) (models.ToolSettings, error) {
	if err := patch.validate(); err != nil {
		return models.ToolSettings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.state.Tool)
	return s.state.Tool, nil
}

// SetGroupInteraction stores the group interaction. It is ignored while only
// one subject exists.
func (s *Session) SetGroupInteraction(patch SelectionPatch) models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SubjectCount <= models.MinSubjects {
		return models.Selection{}
	}
	patch.apply(&s.state.GroupInteraction)
	return s.state.GroupInteraction
}

// Derive computes every derived string for the current state
func (s *Session) Derive() prompt.Result {
	return s.builder.Build(s.State())
}

// Reset restores the initial empty state
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.NewState()
	s.clearCopiedLocked()
}

// Copy writes the derived prompt to the clipboard. copied is false when the
// write failed; the failure is logged and otherwise ignored.
func (s *Session) Copy() (string, bool) {
	text := s.Derive().Prompt

	if err := s.clipboard.WriteAll(text); err != nil {
		logger.Warn("Clipboard write failed", logger.Fields{
			"session_id": s.ID,
			"error":      err.Error(),
		})
		return text, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearCopiedLocked()
	s.copied = true
	seq := s.copySeq
	s.copyTimer = time.AfterFunc(s.copyAck, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A newer copy owns the flag
		if s.copySeq == seq {
			s.copied = false
		}
	})
	return text, true
}

// Copied reports whether the copy acknowledgment is showing
func (s *Session) Copied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copied
}

// Close stops the acknowledgment timer
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCopiedLocked()
}

func (s *Session) clearCopiedLocked() {
	s.copySeq++
	if s.copyTimer != nil {
		s.copyTimer.Stop()
		s.copyTimer = nil
	}
	s.copied = false
}
