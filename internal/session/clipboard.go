package session

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when the host has no clipboard utility
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this host")

// Clipboard receives copied prompts
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the host clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// NoopClipboard accepts every write. The browser performs the actual copy.
type NoopClipboard struct{}

func (NoopClipboard) WriteAll(string) error {
	return nil
}

// NewClipboard returns the host clipboard when enabled, otherwise a no-op
func NewClipboard(enabled bool) Clipboard {
	if enabled {
		return SystemClipboard{}
	}
	return NoopClipboard{}
}
