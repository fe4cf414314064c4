package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/imageai-prompt-builder/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetOptimizerPrompt loads the system prompt for the prompt optimizer
func (l *Loader) GetOptimizerPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.OptimizerPromptTxt)), nil
}
