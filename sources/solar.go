// Package sources models the scene observed by FURST: the full solar disk.
package sources

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sun-data/furstoptics/geom"
	"github.com/sun-data/furstoptics/optic"
)

// MeanSolarAngularRadius is the average angular radius of the solar disk
// seen from 1 au, in radians (959.63 arcsec).
const MeanSolarAngularRadius = 959.63 * math.Pi / (180 * 3600)

// SolarDisk is the nominal scene observed by FURST, the entire solar disk.
type SolarDisk struct {
	// AngularRadius is the angular radius of the disk in radians. Zero
	// means the mean solar angular radius.
	AngularRadius float64

	// Translation offsets the disk on the celestial sphere, in mm.
	Translation r3.Vec
}

// Surface lowers the solar disk to a field-stop surface on the celestial
// sphere.
func (d SolarDisk) Surface() (optic.Surface, error) {
	r := d.AngularRadius
	if r == 0 {
		r = MeanSolarAngularRadius
	}
	if r < 0 || r > math.Pi/2 {
		return optic.Surface{}, fmt.Errorf("%w: solar disk angular radius %v rad",
			optic.ErrInvalidAperture, r)
	}
	s := optic.Surface{
		Name: "solar disk",
		// The aperture radius is a direction cosine, matching the
		// celestial-sphere parameterization of the scene.
		Aperture:    optic.CircularAperture{Radius: math.Cos(r)},
		IsFieldStop: true,
		Transform:   geom.Translate(d.Translation),
	}
	if err := s.Validate(); err != nil {
		return optic.Surface{}, err
	}
	return s, nil
}
