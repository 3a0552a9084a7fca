package feedoptics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sun-data/furstoptics/geom"
	"github.com/sun-data/furstoptics/optic"
)

// FeedOptic is one cylindrical feed mirror of the instrument.
type FeedOptic struct {
	// Name is the human-readable name of this optic.
	Name string

	// Radius is the radius of curvature of the cylindrical surface in mm.
	Radius float64

	// ApertureSubtent is the angular width of the clear aperture in
	// radians, measured from the cylinder axis.
	ApertureSubtent float64

	// ApertureHeight is the physical height of the clear aperture in mm.
	ApertureHeight float64

	// MarginPolishing is the height above and below the clear aperture
	// needed to hold the optic for polishing, in mm.
	MarginPolishing float64

	// MarginMounting is the length of the optic used to hold it in its
	// mount, in mm.
	MarginMounting float64

	// Material is the coating making the optic reflective in the science
	// band.
	Material optic.Material

	// RowlandRadius is the radius of the Rowland circle in mm.
	RowlandRadius float64

	// RowlandAzimuth is the azimuth of the virtual image of the Sun on
	// the Rowland circle, in radians.
	RowlandAzimuth float64

	// Translation is the offset from the nominal position, in mm.
	Translation r3.Vec

	// Pitch, Yaw, and Roll are pointing adjustments in radians.
	Pitch, Yaw, Roll float64
}

// Transform places the optic so that the virtual image of the Sun falls
// on the Rowland circle: the surface is pulled back by its curvature
// radius, counter-rotated, placed on the circle, adjusted for pointing,
// and finally pushed out to the half-radius virtual image distance.
func (f FeedOptic) Transform() geom.Transform {
	return geom.Compose(
		geom.Translate(r3.Vec{Z: -f.Radius}),
		geom.RotateY(-f.RowlandAzimuth),
		geom.RowlandTransform(f.RowlandRadius, f.RowlandAzimuth),
		geom.OrientTransform(f.Pitch, f.Yaw, f.Roll, f.Translation),
		geom.Translate(r3.Vec{Z: f.Radius / 2}),
	)
}

// Surface lowers the feed optic to an optical surface.
func (f FeedOptic) Surface() (optic.Surface, error) {
	name := f.Name
	if name == "" {
		name = "feed optic"
	}
	if err := f.validate(name); err != nil {
		return optic.Surface{}, err
	}
	s := optic.Surface{
		Name:     name,
		Sag:      optic.CylindricalSag{Radius: f.Radius},
		Material: f.Material,
		Aperture: optic.RectangularAperture{
			HalfWidth: geom.V2(
				f.Radius*math.Sin(f.ApertureSubtent/2),
				f.ApertureHeight/2,
			),
		},
		ApertureMech: optic.RectangularAperture{
			HalfWidth: geom.V2(
				0.99*f.Radius,
				f.ApertureHeight/2+f.MarginMounting+f.MarginPolishing,
			),
			Offset: geom.V2(0, f.MarginPolishing-f.MarginMounting),
		},
		Transform: f.Transform(),
	}
	if err := s.Validate(); err != nil {
		return optic.Surface{}, err
	}
	return s, nil
}

func (f FeedOptic) validate(name string) error {
	switch {
	case f.Radius <= 0:
		return fmt.Errorf("%s: %w: %v mm", name, optic.ErrInvalidRadius, f.Radius)
	case f.ApertureSubtent <= 0 || f.ApertureSubtent > math.Pi:
		return fmt.Errorf("%s: %w: aperture subtent %v rad", name, optic.ErrInvalidAperture, f.ApertureSubtent)
	case f.ApertureHeight <= 0:
		return fmt.Errorf("%s: %w: aperture height %v mm", name, optic.ErrInvalidAperture, f.ApertureHeight)
	case f.MarginPolishing < 0 || f.MarginMounting < 0:
		return fmt.Errorf("%s: %w: negative margin", name, optic.ErrInvalidAperture)
	case f.RowlandRadius <= 0:
		return fmt.Errorf("%s: %w: rowland radius %v mm", name, optic.ErrInvalidRadius, f.RowlandRadius)
	}
	return nil
}
