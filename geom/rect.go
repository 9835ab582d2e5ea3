// Package geom provides basic geometric value types.
package geom

// Rect is an axis-aligned rectangle described by its dimensions. It is
// a plain immutable value with no identity beyond its fields.
type Rect struct {
	Width  float64
	Height float64
}

// NewRect returns a rectangle with the given dimensions. Dimensions are
// taken as-is, nothing is validated.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns Width*Height, computed on every call.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
