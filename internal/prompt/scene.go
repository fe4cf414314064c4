package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

// SceneClause composes the environment clause: free-text description,
// environment, weather and material, in that order.
func SceneClause(state models.State) string {
	style := state.Style
	var c clause

	desc := strings.TrimSpace(style.SceneDescription)
	c.add(desc, desc != "")

	env, ok := resolve(style.Environment)
	c.addFormat("set in ", env, "", ok)

	weather, ok := resolve(style.Weather)
	c.add(weather, ok)

	material, ok := resolve(style.Material)
	c.addFormat("made of ", material, "", ok)

	return c.String()
}
