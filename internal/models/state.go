package models

// Subject count bounds offered by the builder
const (
	MinSubjects = 1
	MaxSubjects = 3
)

// Subject describes one person or creature in the image
type Subject struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Age        Selection      `json:"age"`
	Expression Selection      `json:"expression"`
	Action     Selection      `json:"action"`
	Clothing   MultiSelection `json:"clothing"`
}

// NewSubject returns a blank subject with the given positional id
func NewSubject(id int) Subject {
	return Subject{ID: id}
}

// Clone returns a deep copy
func (s Subject) Clone() Subject {
	c := s
	c.Clothing = s.Clothing.Clone()
	return c
}

// StyleSettings holds the global atmosphere and style selections
type StyleSettings struct {
	SceneDescription string `json:"scene_description"`

	ArtStyle     MultiSelection `json:"art_style"`
	Quality      Selection      `json:"quality"`
	Composition  Selection      `json:"composition"`
	ShotType     Selection      `json:"shot_type"`
	CameraAngle  Selection      `json:"camera_angle"`
	Environment  Selection      `json:"environment"`
	Lighting     Selection      `json:"lighting"`
	Weather      Selection      `json:"weather"`
	Material     Selection      `json:"material"`
	ColorPalette Selection      `json:"color_palette"`
	FilmType     Selection      `json:"film_type"`
	Effects      MultiSelection `json:"effects"`
}

// Clone returns a deep copy
func (s StyleSettings) Clone() StyleSettings {
	c := s
	c.ArtStyle = s.ArtStyle.Clone()
	c.Effects = s.Effects.Clone()
	return c
}

// State is the full builder state of one session
type State struct {
	MainText         string        `json:"main_text"`
	SubjectCount     int           `json:"subject_count"`
	Subjects         []Subject     `json:"subjects"`
	GroupInteraction Selection     `json:"group_interaction"`
	Style            StyleSettings `json:"style"`
	Tool             ToolSettings  `json:"tool"`
}

// NewState returns the initial empty configuration
func NewState() State {
	return State{
		SubjectCount: MinSubjects,
		Subjects:     []Subject{NewSubject(1)},
		Tool:         DefaultToolSettings(),
	}
}

// Clone returns a deep copy safe to hand out of a locked session
func (s State) Clone() State {
	c := s
	c.Subjects = make([]Subject, len(s.Subjects))
	for i, sub := range s.Subjects {
		c.Subjects[i] = sub.Clone()
	}
	c.Style = s.Style.Clone()
	return c
}

// ResizeSubjects appends blank subjects or truncates from the end so that
// exactly n subjects remain. Truncated data is discarded.
func (s *State) ResizeSubjects(n int) {
	n = Clamp(n, MinSubjects, MaxSubjects)
	if n < len(s.Subjects) {
		s.Subjects = s.Subjects[:n:n]
	}
	for i := len(s.Subjects); i < n; i++ {
		s.Subjects = append(s.Subjects, NewSubject(i+1))
	}
	s.SubjectCount = n
	if n == MinSubjects {
		s.GroupInteraction = Selection{}
	}
}

// Subject returns a pointer to the subject with the given id, or nil
func (s *State) Subject(id int) *Subject {
	if id < 1 || id > len(s.Subjects) {
		return nil
	}
	return &s.Subjects[id-1]
}
