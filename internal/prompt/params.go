package prompt

import (
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

// modelFlags maps each model version to its literal flag tokens
var modelFlags = map[models.ModelVersion]string{
	models.ModelLatest: "--v 7",
	models.ModelLegacy: "--v 6",
	models.ModelNiji:   "--niji",
}

// ModelFlag returns the flag for a model version. Unknown versions fall back
// to the latest model so a model flag is always present.
func ModelFlag(m models.ModelVersion) string {
	if flag, ok := modelFlags[m]; ok {
		return flag
	}
	return modelFlags[models.ModelLatest]
}

// AspectRatio returns the ratio to emit, or "" when a custom ratio is selected
// but left blank.
func AspectRatio(t models.ToolSettings) string {
	if t.AspectRatio == models.AspectRatioCustom {
		return strings.TrimSpace(t.CustomAspectRatio)
	}
	return strings.TrimSpace(t.AspectRatio)
}

// ToolParams builds the Midjourney flag string. Flags are emitted in a fixed
// order: model, aspect ratio, chaos, stylize, weird, repeat, tile.
func ToolParams(state models.State) string {
	t := state.Tool
	if t.Tool != models.ToolMidjourney {
		return ""
	}

	flags := []string{ModelFlag(t.Model)}
	if ar := AspectRatio(t); ar != "" {
		flags = append(flags, "--ar "+ar)
	}
	if t.Chaos > 0 {
		flags = append(flags, "--c "+strconv.Itoa(t.Chaos))
	}
	if t.Stylize > 0 {
		flags = append(flags, "--s "+strconv.Itoa(t.Stylize))
	}
	if t.Weird > 0 {
		flags = append(flags, "--w "+strconv.Itoa(t.Weird))
	}
	if t.Repeat > 1 {
		flags = append(flags, "--r "+strconv.Itoa(t.Repeat))
	}
	if t.Tile {
		flags = append(flags, "--tile")
	}
	return strings.Join(flags, " ")
}
