//go:build !noebiten

package geom

import "github.com/hajimehoshi/ebiten/v2"

// Returns the part of the image covered by the rect, with the
// bounds rounded outwards like [Rect.ImageRect].
func (self Rect) Clip(image *ebiten.Image) *ebiten.Image {
	return image.SubImage(self.ImageRect()).(*ebiten.Image)
}

// Applies a translation by the vector to the given matrix, typically
// the GeoM of some ebiten.DrawImageOptions.
func (self Vector2) Translate(geom *ebiten.GeoM) {
	geom.Translate(self.ToFloat64s())
}
