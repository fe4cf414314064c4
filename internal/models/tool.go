package models

// Tool identifies the image tool the prompt is written for
type Tool string

const (
	// ToolMidjourney accepts "--" parameter flags
	ToolMidjourney Tool = "midjourney"
	// ToolChat is a chat-based image model (ChatGPT / Gemini); no flags
	ToolChat Tool = "chatgpt"
)

// ModelVersion selects the Midjourney model flag
type ModelVersion string

const (
	ModelLatest ModelVersion = "latest"
	ModelLegacy ModelVersion = "legacy"
	ModelNiji   ModelVersion = "niji"
)

// AspectRatioCustom marks that CustomAspectRatio should be used instead of a preset
const AspectRatioCustom = "custom"

// Parameter ranges enforced at the edit boundary
const (
	DefaultAspectRatio = "1:1"

	MinChaos   = 0
	MaxChaos   = 100
	MinStylize = 0
	MaxStylize = 1000
	MinWeird   = 0
	MaxWeird   = 3000
	WeirdStep  = 10
	MinRepeat  = 1
	MaxRepeat  = 10
)

// ToolSettings holds the tool-specific generation parameters
type ToolSettings struct {
	Tool              Tool         `json:"tool"`
	Model             ModelVersion `json:"model"`
	AspectRatio       string       `json:"aspect_ratio"`
	CustomAspectRatio string       `json:"custom_aspect_ratio"`
	Chaos             int          `json:"chaos"`
	Stylize           int          `json:"stylize"`
	Weird             int          `json:"weird"`
	Repeat            int          `json:"repeat"`
	Tile              bool         `json:"tile"`
}

// DefaultToolSettings returns the settings of a fresh session
func DefaultToolSettings() ToolSettings {
	return ToolSettings{
		Tool:        ToolChat,
		Model:       ModelLatest,
		AspectRatio: DefaultAspectRatio,
		Repeat:      MinRepeat,
	}
}

// Valid reports whether t is a known tool
func (t Tool) Valid() bool {
	return t == ToolMidjourney || t == ToolChat
}

// Valid reports whether m is a known model version
func (m ModelVersion) Valid() bool {
	switch m {
	case ModelLatest, ModelLegacy, ModelNiji:
		return true
	}
	return false
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampRepeat limits the repeat count to [1,10]
func ClampRepeat(v int) int {
	return Clamp(v, MinRepeat, MaxRepeat)
}

// ClampChaos limits chaos to [0,100]
func ClampChaos(v int) int {
	return Clamp(v, MinChaos, MaxChaos)
}

// ClampStylize limits stylize to [0,1000]
func ClampStylize(v int) int {
	return Clamp(v, MinStylize, MaxStylize)
}

// ClampWeird limits weird to [0,3000] and snaps it down to the slider step
func ClampWeird(v int) int {
	v = Clamp(v, MinWeird, MaxWeird)
	return v - v%WeirdStep
}
