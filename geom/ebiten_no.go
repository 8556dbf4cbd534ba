//go:build noebiten

package geom

import "image"
import "image/draw"

import "golang.org/x/image/math/f64"

// Utility function to retrieve the subimage corresponding
// to the rect area. The target must support SubImage, like
// all the image types of the standard library do.
func (self Rect) Clip(target draw.Image) draw.Image {
	subImager, ok := target.(interface{ SubImage(image.Rectangle) image.Image })
	if !ok { panic("geom.Rect.Clip: target image doesn't implement SubImage") }
	return subImager.SubImage(self.ImageRect()).(draw.Image)
}

// Applies a translation by the vector to the given affine matrix, as
// used by golang.org/x/image/draw transformers.
func (self Vector2) Translate(matrix *f64.Aff3) {
	x, y := self.ToFloat64s()
	matrix[2] += x
	matrix[5] += y
}
