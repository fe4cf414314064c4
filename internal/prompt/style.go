package prompt

import "github.com/Conceptual-Machines/imageai-prompt-builder/internal/models"

// StyleClause composes the visual-style clause. Part order is fixed:
// film, art style, color palette, composition, lighting, shot type,
// camera angle, quality, effects.
func StyleClause(state models.State) string {
	style := state.Style
	var c clause

	film, ok := resolve(style.FilmType)
	c.addFormat("shot on ", film, "", ok)

	art, ok := resolveMulti(style.ArtStyle, listSeparator)
	c.addFormat("", art, " style", ok)

	color, ok := resolve(style.ColorPalette)
	c.addFormat("in ", color, " color palette", ok)

	composition, ok := resolve(style.Composition)
	c.addFormat("with ", composition, "", ok)

	lighting, ok := resolve(style.Lighting)
	c.addFormat("", lighting, " lighting", ok)

	c.add(resolve(style.ShotType))
	c.add(resolve(style.CameraAngle))
	c.add(resolve(style.Quality))
	c.add(resolveMulti(style.Effects, listSeparator))

	return c.String()
}
