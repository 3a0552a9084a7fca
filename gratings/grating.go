// Package gratings models the FURST diffraction grating: a concave,
// spherical grating with a rectangular aperture whose curvature defines
// the Rowland circle.
package gratings

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sun-data/furstoptics/geom"
	"github.com/sun-data/furstoptics/optic"
)

// Grating is the concave spherical diffraction grating of the instrument.
type Grating struct {
	// Name is the human-readable name of this optic.
	Name string

	// Radius is the radius of curvature of the optical surface in mm.
	// For a classical Rowland mount it is twice the Rowland radius.
	Radius float64

	// WidthClear holds the full width and height of the clear aperture in
	// mm.
	WidthClear geom.Vec2

	// WidthMech holds the full width and height of the substrate in mm.
	WidthMech geom.Vec2

	// Material is the reflective coating of the grating.
	Material optic.Material

	// Rulings models the groove density and design diffraction order.
	Rulings optic.Rulings

	// RowlandRadius is the radius of the Rowland circle in mm.
	RowlandRadius float64

	// RowlandAzimuth is the azimuth of the grating on the Rowland circle,
	// in radians.
	RowlandAzimuth float64

	// Translation is the offset from the nominal position, in mm.
	Translation r3.Vec

	// Pitch, Yaw, and Roll are pointing adjustments in radians.
	Pitch, Yaw, Roll float64
}

// Transform places the grating on the Rowland circle facing its center.
func (g Grating) Transform() geom.Transform {
	return geom.Compose(
		geom.RotateY(math.Pi),
		geom.RowlandTransform(g.RowlandRadius, g.RowlandAzimuth),
		geom.OrientTransform(g.Pitch, g.Yaw, g.Roll, g.Translation),
	)
}

// Surface lowers the grating to an optical surface. The grating is the
// pupil stop of the instrument.
func (g Grating) Surface() (optic.Surface, error) {
	name := g.Name
	if name == "" {
		name = "grating"
	}
	if g.RowlandRadius <= 0 {
		return optic.Surface{}, fmt.Errorf("%s: %w: rowland radius %v mm",
			name, optic.ErrInvalidRadius, g.RowlandRadius)
	}
	rulings := g.Rulings
	s := optic.Surface{
		Name:         name,
		Sag:          optic.SphericalSag{Radius: g.Radius},
		Material:     g.Material,
		Aperture:     optic.RectangularAperture{HalfWidth: g.WidthClear.Div(2)},
		ApertureMech: optic.RectangularAperture{HalfWidth: g.WidthMech.Div(2)},
		Rulings:      &rulings,
		IsPupilStop:  true,
		Transform:    g.Transform(),
	}
	if err := s.Validate(); err != nil {
		return optic.Surface{}, err
	}
	return s, nil
}
