package optic

import (
	"fmt"

	"github.com/sun-data/furstoptics/geom"
)

// Aperture bounds the region of a surface that interacts with light.
// Coordinates are in the surface's local XY plane.
type Aperture interface {
	// Contains reports whether the point (x, y) is inside the aperture.
	Contains(x, y float64) bool

	// HalfExtent returns the half-widths of the aperture's bounding box,
	// used for schematic rendering.
	HalfExtent() geom.Vec2

	// Validate reports whether the aperture dimensions are physical.
	Validate() error
}

// CircularAperture is a circular clear aperture centered on the vertex.
type CircularAperture struct {
	// Radius of the aperture. Usually mm; for apertures on the celestial
	// sphere (the solar-disk field stop) it is a direction cosine.
	Radius float64
}

// Contains implements Aperture.
func (a CircularAperture) Contains(x, y float64) bool {
	return x*x+y*y <= a.Radius*a.Radius
}

// HalfExtent implements Aperture.
func (a CircularAperture) HalfExtent() geom.Vec2 {
	return geom.V2(a.Radius, a.Radius)
}

// Validate implements Aperture.
func (a CircularAperture) Validate() error {
	if a.Radius <= 0 {
		return fmt.Errorf("%w: circular aperture radius %v", ErrInvalidAperture, a.Radius)
	}
	return nil
}

// RectangularAperture is a rectangular aperture, optionally decentered
// from the vertex. Mechanical apertures use the offset to account for
// asymmetric polishing and mounting margins.
type RectangularAperture struct {
	// HalfWidth holds the half-width of the aperture along X and Y, in mm.
	HalfWidth geom.Vec2

	// Offset displaces the aperture center from the surface vertex, in mm.
	Offset geom.Vec2
}

// Contains implements Aperture.
func (a RectangularAperture) Contains(x, y float64) bool {
	dx := x - a.Offset.X
	dy := y - a.Offset.Y
	return dx >= -a.HalfWidth.X && dx <= a.HalfWidth.X &&
		dy >= -a.HalfWidth.Y && dy <= a.HalfWidth.Y
}

// HalfExtent implements Aperture.
func (a RectangularAperture) HalfExtent() geom.Vec2 {
	return a.HalfWidth
}

// Validate implements Aperture.
func (a RectangularAperture) Validate() error {
	if a.HalfWidth.X <= 0 || a.HalfWidth.Y <= 0 {
		return fmt.Errorf("%w: rectangular aperture half-width %+v mm", ErrInvalidAperture, a.HalfWidth)
	}
	return nil
}
