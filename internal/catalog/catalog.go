package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Conceptual-Machines/imageai-prompt-builder/pkg/embedded"
)

// Catalog holds the selectable option lists per category. Values are offered
// as pills only; custom text is never checked against them.
type Catalog struct {
	Ages              []string `yaml:"ages" json:"ages"`
	Expressions       []string `yaml:"expressions" json:"expressions"`
	Actions           []string `yaml:"actions" json:"actions"`
	Clothing          []string `yaml:"clothing" json:"clothing"`
	GroupInteractions []string `yaml:"group_interactions" json:"group_interactions"`
	ArtStyles         []string `yaml:"art_styles" json:"art_styles"`
	Quality           []string `yaml:"quality" json:"quality"`
	Compositions      []string `yaml:"compositions" json:"compositions"`
	ShotTypes         []string `yaml:"shot_types" json:"shot_types"`
	CameraAngles      []string `yaml:"camera_angles" json:"camera_angles"`
	Environments      []string `yaml:"environments" json:"environments"`
	Lighting          []string `yaml:"lighting" json:"lighting"`
	Weather           []string `yaml:"weather" json:"weather"`
	Materials         []string `yaml:"materials" json:"materials"`
	Colors            []string `yaml:"colors" json:"colors"`
	FilmTypes         []string `yaml:"film_types" json:"film_types"`
	Effects           []string `yaml:"effects" json:"effects"`
	AspectRatios      []string `yaml:"aspect_ratios" json:"aspect_ratios"`
}

// Default parses the embedded catalog
func Default() (*Catalog, error) {
	return Parse(embedded.CatalogYAML)
}

// Load reads the catalog from path, or the embedded catalog when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return c, nil
}

// Categories returns every list keyed by its category name
func (c *Catalog) Categories() map[string][]string {
	return map[string][]string{
		"ages":               c.Ages,
		"expressions":        c.Expressions,
		"actions":            c.Actions,
		"clothing":           c.Clothing,
		"group_interactions": c.GroupInteractions,
		"art_styles":         c.ArtStyles,
		"quality":            c.Quality,
		"compositions":       c.Compositions,
		"shot_types":         c.ShotTypes,
		"camera_angles":      c.CameraAngles,
		"environments":       c.Environments,
		"lighting":           c.Lighting,
		"weather":            c.Weather,
		"materials":          c.Materials,
		"colors":             c.Colors,
		"film_types":         c.FilmTypes,
		"effects":            c.Effects,
		"aspect_ratios":      c.AspectRatios,
	}
}
