package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

// Separators used when merging the parts of a field
const (
	singleSeparator   = " "
	listSeparator     = ", "
	clothingSeparator = " and "
	clauseSeparator   = ", "
)

// MergeSelection joins the trimmed, non-empty preset and custom parts with sep,
// preset first. ok is false when both parts are empty.
func MergeSelection(preset, custom, sep string) (string, bool) {
	return joinNonEmpty([]string{preset, custom}, sep)
}

// MergeMultiSelection joins presets in selection order followed by the custom
// text. ok is false when nothing remains after dropping empties.
func MergeMultiSelection(presets []string, custom, sep string) (string, bool) {
	parts := make([]string, 0, len(presets)+1)
	parts = append(parts, presets...)
	parts = append(parts, custom)
	return joinNonEmpty(parts, sep)
}

// resolve merges a single-value selection with a space separator
func resolve(sel models.Selection) (string, bool) {
	return MergeSelection(sel.Preset, sel.Custom, singleSeparator)
}

// resolveMulti merges a multi selection with sep
func resolveMulti(sel models.MultiSelection, sep string) (string, bool) {
	return MergeMultiSelection(sel.Presets.Items(), sel.Custom, sep)
}

// Preview returns the collapsed-section preview text for a selection
func Preview(sel models.Selection) string {
	v, _ := MergeSelection(sel.Preset, sel.Custom, listSeparator)
	return v
}

// PreviewMulti returns the collapsed-section preview text for a multi selection
func PreviewMulti(sel models.MultiSelection) string {
	v, _ := resolveMulti(sel, listSeparator)
	return v
}

// WithPrefix prepends prefix to a resolved value. An empty value stays empty.
func WithPrefix(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

func joinNonEmpty(parts []string, sep string) (string, bool) {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, sep), true
}

// clause collects optional fragments of one composed clause
type clause struct {
	parts []string
}

// add appends value when ok
func (c *clause) add(value string, ok bool) {
	if ok {
		c.parts = append(c.parts, value)
	}
}

// addFormat appends prefix+value+suffix when ok
func (c *clause) addFormat(prefix, value, suffix string, ok bool) {
	if ok {
		c.parts = append(c.parts, WithPrefix(prefix, value)+suffix)
	}
}

func (c *clause) String() string {
	return strings.Join(c.parts, clauseSeparator)
}
