// Package apertures models the entrance aperture of the FURST instrument.
package apertures

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sun-data/furstoptics/geom"
	"github.com/sun-data/furstoptics/optic"
)

// FrontAperture is the front aperture plate of the instrument. The plate
// is both the entrance aperture to the optical system and the mechanical
// interface between the optical table and the rocket skins.
type FrontAperture struct {
	// Radius is the clear-aperture radius of the plate in mm. Zero means
	// an open plate (a pure reference surface).
	Radius float64

	// Translation is the location of the plate relative to the rest of
	// the optical system, in mm.
	Translation r3.Vec
}

// Surface lowers the plate to an optical surface.
func (a FrontAperture) Surface() (optic.Surface, error) {
	if a.Radius < 0 {
		return optic.Surface{}, fmt.Errorf("%w: front aperture radius %v mm",
			optic.ErrInvalidAperture, a.Radius)
	}
	s := optic.Surface{
		Name:      "front aperture",
		Transform: geom.Translate(a.Translation),
	}
	if a.Radius > 0 {
		s.Aperture = optic.CircularAperture{Radius: a.Radius}
	}
	if err := s.Validate(); err != nil {
		return optic.Surface{}, err
	}
	return s, nil
}
