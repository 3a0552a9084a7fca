// Package detectors models the FURST imaging sensor and camera.
package detectors

import (
	"fmt"
	"image"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sun-data/furstoptics/geom"
	"github.com/sun-data/furstoptics/optic"
)

// Detector is the imaging sensor and camera of the instrument.
type Detector struct {
	// Name is the human-readable name of this detector.
	Name string

	// Manufacturer, ModelNumber, and SerialNumber identify the physical
	// camera unit.
	Manufacturer string
	ModelNumber  string
	SerialNumber string

	// PixelPitch is the physical width of a pixel along each axis, in mm.
	PixelPitch geom.Vec2

	// PixelCount is the number of pixels along each axis.
	PixelCount image.Point

	// PixelOverscan and PixelBlank are the per-tap overscan and blank
	// column counts.
	PixelOverscan int
	PixelBlank    int

	// Gain is the conversion between measured electrons and reported
	// data numbers, in electrons per DN.
	Gain float64

	// ReadoutNoise is the standard deviation of the readout electronics
	// noise, in DN.
	ReadoutNoise float64

	// DarkCurrent is the dark signal at the operating temperature, in
	// electrons per second.
	DarkCurrent float64

	// ChargeDiffusion is the standard deviation of the charge diffusion
	// kernel, in mm.
	ChargeDiffusion float64

	// Temperature is the operating temperature in kelvin.
	Temperature float64

	// TimeTransfer and TimeReadout are the frame-transfer and digitization
	// times.
	TimeTransfer time.Duration
	TimeReadout  time.Duration

	// Exposure is the current exposure time; ExposureMin and ExposureMax
	// bound what the camera allows.
	Exposure    time.Duration
	ExposureMin time.Duration
	ExposureMax time.Duration

	// BitsADC is the resolution of the analog-to-digital converter.
	BitsADC int

	// RowlandRadius is the radius of the Rowland circle in mm.
	RowlandRadius float64

	// RowlandAzimuth is the azimuth of the detector center on the Rowland
	// circle, in radians.
	RowlandAzimuth float64

	// Translation is the offset from the nominal position, in mm.
	Translation r3.Vec

	// Pitch, Yaw, and Roll are pointing adjustments in radians.
	Pitch, Yaw, Roll float64
}

// Width returns the physical extent of the light-sensitive area in mm.
func (d Detector) Width() geom.Vec2 {
	return geom.V2(
		d.PixelPitch.X*float64(d.PixelCount.X),
		d.PixelPitch.Y*float64(d.PixelCount.Y),
	)
}

// Transform places the detector on the Rowland circle facing its center.
func (d Detector) Transform() geom.Transform {
	return geom.Compose(
		geom.RotateY(math.Pi),
		geom.RowlandTransform(d.RowlandRadius, d.RowlandAzimuth),
		geom.OrientTransform(d.Pitch, d.Yaw, d.Roll, d.Translation),
	)
}

// Surface lowers the detector to a flat optical surface bounded by the
// light-sensitive area.
func (d Detector) Surface() (optic.Surface, error) {
	name := d.Name
	if name == "" {
		name = "detector"
	}
	if err := d.validate(name); err != nil {
		return optic.Surface{}, err
	}
	s := optic.Surface{
		Name:      name,
		Aperture:  optic.RectangularAperture{HalfWidth: d.Width().Div(2)},
		Transform: d.Transform(),
	}
	if err := s.Validate(); err != nil {
		return optic.Surface{}, err
	}
	return s, nil
}

func (d Detector) validate(name string) error {
	switch {
	case d.PixelPitch.X <= 0 || d.PixelPitch.Y <= 0:
		return fmt.Errorf("%s: %w: pixel pitch %+v mm", name, optic.ErrInvalidAperture, d.PixelPitch)
	case d.PixelCount.X <= 0 || d.PixelCount.Y <= 0:
		return fmt.Errorf("%s: %w: pixel count %v", name, optic.ErrInvalidAperture, d.PixelCount)
	case d.PixelOverscan < 0 || d.PixelBlank < 0:
		return fmt.Errorf("%s: %w: negative overscan or blank columns", name, optic.ErrInvalidAperture)
	case d.Gain < 0:
		return fmt.Errorf("%s: invalid gain %v e-/DN", name, d.Gain)
	case d.ExposureMin < 0 || (d.ExposureMax != 0 && d.ExposureMax < d.ExposureMin):
		return fmt.Errorf("%s: invalid exposure limits [%v, %v]", name, d.ExposureMin, d.ExposureMax)
	case d.RowlandRadius <= 0:
		return fmt.Errorf("%s: %w: rowland radius %v mm", name, optic.ErrInvalidRadius, d.RowlandRadius)
	}
	return nil
}
