package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

const (
	defaultSubjectName = "Subject"

	// Group keywords are literal output tokens and stay uppercase
	groupJoin      = " AND "
	groupVerb      = " ARE "
	sentenceJoiner = ". "
)

// HasContent reports whether any field of the subject is filled in
func HasContent(sub models.Subject) bool {
	if strings.TrimSpace(sub.Name) != "" {
		return true
	}
	for _, sel := range []models.Selection{sub.Age, sub.Expression, sub.Action} {
		if _, ok := resolve(sel); ok {
			return true
		}
	}
	_, ok := resolveMulti(sub.Clothing, clothingSeparator)
	return ok
}

// DescribeSubject builds the clause for one subject. ok is false when the
// subject has no content and must be left out of the prompt.
func DescribeSubject(sub models.Subject) (string, bool) {
	if !HasContent(sub) {
		return "", false
	}

	var sb strings.Builder
	if name := strings.TrimSpace(sub.Name); name != "" {
		sb.WriteString(name)
	} else {
		sb.WriteString(defaultSubjectName)
	}

	if age, ok := resolve(sub.Age); ok {
		sb.WriteString(" in their ")
		sb.WriteString(age)
	}
	if expr, ok := resolve(sub.Expression); ok {
		sb.WriteString(" with a ")
		sb.WriteString(expr)
		sb.WriteString(" expression")
	}
	if clothing, ok := resolveMulti(sub.Clothing, clothingSeparator); ok {
		sb.WriteString(" wearing ")
		sb.WriteString(clothing)
	}
	if action, ok := resolve(sub.Action); ok {
		sb.WriteString(", ")
		sb.WriteString(action)
	}
	return sb.String(), true
}

// GroupInteraction returns the resolved interaction text, or "" when it cannot
// apply (a single subject or nothing selected).
func GroupInteraction(state models.State) string {
	if state.SubjectCount <= models.MinSubjects || len(state.Subjects) <= 1 {
		return ""
	}
	text, _ := MergeSelection(state.GroupInteraction.Preset, state.GroupInteraction.Custom, listSeparator)
	return text
}

// SubjectClause composes every subject with content into one clause, without
// a trailing period.
func SubjectClause(state models.State) string {
	clauses := make([]string, 0, len(state.Subjects))
	for _, sub := range state.Subjects {
		if text, ok := DescribeSubject(sub); ok {
			clauses = append(clauses, text)
		}
	}

	if len(clauses) > 1 {
		if interaction := GroupInteraction(state); interaction != "" {
			return strings.Join(clauses, groupJoin) + groupVerb + interaction
		}
	}
	return strings.Join(clauses, sentenceJoiner)
}
