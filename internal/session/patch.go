package session

import (
	"github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"
)

// SelectionPatch updates the parts of a Selection that are set
type SelectionPatch struct {
	Preset *string `json:"preset"`
	Custom *string `json:"custom"`
}

func (p *SelectionPatch) apply(sel *models.Selection) {
	if p == nil {
		return
	}
	if p.Preset != nil {
		sel.Preset = *p.Preset
	}
	if p.Custom != nil {
		sel.Custom = *p.Custom
	}
}

// SubjectPatch updates one subject. Clothing presets change through toggles.
type SubjectPatch struct {
	Name           *string         `json:"name"`
	Age            *SelectionPatch `json:"age"`
	Expression     *SelectionPatch `json:"expression"`
	Action         *SelectionPatch `json:"action"`
	ClothingCustom *string         `json:"clothing_custom"`
}

func (p SubjectPatch) apply(sub *models.Subject) {
	if p.Name != nil {
		sub.Name = *p.Name
	}
	p.Age.apply(&sub.Age)
	p.Expression.apply(&sub.Expression)
	p.Action.apply(&sub.Action)
	if p.ClothingCustom != nil {
		sub.Clothing.Custom = *p.ClothingCustom
	}
}

// StylePatch updates the style settings. Multi-select presets change through toggles.
type StylePatch struct {
	SceneDescription *string `json:"scene_description"`
	ArtStyleCustom   *string `json:"art_style_custom"`
	EffectsCustom    *string `json:"effects_custom"`

	Quality      *SelectionPatch `json:"quality"`
	Composition  *SelectionPatch `json:"composition"`
	ShotType     *SelectionPatch `json:"shot_type"`
	CameraAngle  *SelectionPatch `json:"camera_angle"`
	Environment  *SelectionPatch `json:"environment"`
	Lighting     *SelectionPatch `json:"lighting"`
	Weather      *SelectionPatch `json:"weather"`
	Material     *SelectionPatch `json:"material"`
	ColorPalette *SelectionPatch `json:"color_palette"`
	FilmType     *SelectionPatch `json:"film_type"`
}

func (p StylePatch) apply(s *models.StyleSettings) {
	if p.SceneDescription != nil {
		s.SceneDescription = *p.SceneDescription
	}
	if p.ArtStyleCustom != nil {
		s.ArtStyle.Custom = *p.ArtStyleCustom
	}
	if p.EffectsCustom != nil {
		s.Effects.Custom = *p.EffectsCustom
	}
	p.Quality.apply(&s.Quality)
	p.Composition.apply(&s.Composition)
	p.ShotType.apply(&s.ShotType)
	p.CameraAngle.apply(&s.CameraAngle)
	p.Environment.apply(&s.Environment)
	p.Lighting.apply(&s.Lighting)
	p.Weather.apply(&s.Weather)
	p.Material.apply(&s.Material)
	p.ColorPalette.apply(&s.ColorPalette)
	p.FilmType.apply(&s.FilmType)
}

// ToolPatch updates the tool settings. Numeric values are clamped to their ranges.
type ToolPatch struct {
	Tool              *models.Tool         `json:"tool"`
	Model             *models.ModelVersion `json:"model"`
	AspectRatio       *string              `json:"aspect_ratio"`
	CustomAspectRatio *string              `json:"custom_aspect_ratio"`
	Chaos             *int                 `json:"chaos"`
	Stylize           *int                 `json:"stylize"`
	Weird             *int                 `json:"weird"`
	Repeat            *int                 `json:"repeat"`
	Tile              *bool                `json:"tile"`
}

func (p ToolPatch) validate() error {
	if p.Tool != nil && !p.Tool.Valid() {
		return ErrUnknownTool
	}
	if p.Model != nil && !p.Model.Valid() {
		return ErrUnknownModel
	}
	return nil
}

func (p ToolPatch) apply(t *models.ToolSettings) {
	if p.Tool != nil {
		t.Tool = *p.Tool
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	if p.AspectRatio != nil {
		t.AspectRatio = *p.AspectRatio
	}
	if p.CustomAspectRatio != nil {
		t.CustomAspectRatio = *p.CustomAspectRatio
	}
	if p.Chaos != nil {
		t.Chaos = models.ClampChaos(*p.Chaos)
	}
	if p.Stylize != nil {
		t.Stylize = models.ClampStylize(*p.Stylize)
	}
	if p.Weird != nil {
		t.Weird = models.ClampWeird(*p.Weird)
	}
	if p.Repeat != nil {
		t.Repeat = models.ClampRepeat(*p.Repeat)
	}
	if p.Tile != nil {
		t.Tile = *p.Tile
	}
}
