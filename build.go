package furstoptics

import (
	"errors"
	"fmt"
	"image"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sun-data/furstoptics/apertures"
	"github.com/sun-data/furstoptics/detectors"
	"github.com/sun-data/furstoptics/feedoptics"
	"github.com/sun-data/furstoptics/feedoptics/materials"
	"github.com/sun-data/furstoptics/geom"
	"github.com/sun-data/furstoptics/gratings"
	"github.com/sun-data/furstoptics/optic"
	"github.com/sun-data/furstoptics/sources"
)

// ErrInvalidWavelength indicates a wavelength range that is empty,
// inverted, or extends to non-positive wavelengths.
var ErrInvalidWavelength = errors.New("furstoptics: wavelength range must be positive and ordered")

// New assembles the FURST optical system, applying any named physical
// overrides. It is deterministic and side-effect free: the same options
// always yield value-equal Systems. Unphysical parameters fail
// immediately with a descriptive error and no System is returned.
func New(opts ...Option) (*System, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.wavelengthMin <= 0 || cfg.wavelengthMax <= cfg.wavelengthMin {
		return nil, fmt.Errorf("%w: [%v, %v] nm",
			ErrInvalidWavelength, cfg.wavelengthMin, cfg.wavelengthMax)
	}
	if cfg.rowlandRadius <= 0 {
		return nil, fmt.Errorf("%w: rowland radius %v mm",
			optic.ErrInvalidRadius, cfg.rowlandRadius)
	}

	scene, err := sources.SolarDisk{AngularRadius: cfg.sceneAngularRadius}.Surface()
	if err != nil {
		return nil, err
	}

	front, err := apertures.FrontAperture{
		Radius:      cfg.frontApertureRadius,
		Translation: r3.Vec{Z: cfg.frontApertureDistance},
	}.Surface()
	if err != nil {
		return nil, err
	}

	feed, err := feedoptics.FeedOptic{
		Radius:          FeedOpticRadius,
		ApertureSubtent: FeedApertureSubtent,
		ApertureHeight:  FeedApertureHeight,
		MarginPolishing: FeedMarginPolishing,
		MarginMounting:  FeedMarginMounting,
		Material:        materials.CoatingDesign(),
		RowlandRadius:   cfg.rowlandRadius,
		RowlandAzimuth:  cfg.feedAzimuth,
	}.Surface()
	if err != nil {
		return nil, err
	}

	grating, err := gratings.Grating{
		Radius:         cfg.gratingRadius,
		WidthClear:     geom.V2(GratingWidthClear, GratingWidthClear),
		WidthMech:      geom.V2(GratingWidthMech, GratingWidthMech),
		Material:       optic.Mirror{},
		Rulings:        optic.Rulings{Density: cfg.grooveDensity, Order: cfg.order},
		RowlandRadius:  cfg.rowlandRadius,
		RowlandAzimuth: cfg.gratingAzimuth,
	}.Surface()
	if err != nil {
		return nil, err
	}

	detector, err := detectors.Detector{
		Manufacturer:   "Marshall Space Flight Center",
		PixelPitch:     geom.V2(DetectorPixelPitch, DetectorPixelPitch),
		PixelCount:     image.Pt(DetectorPixelCount, DetectorPixelCount),
		Gain:           DetectorGain,
		ReadoutNoise:   DetectorReadoutNoise,
		BitsADC:        DetectorBitsADC,
		RowlandRadius:  cfg.rowlandRadius,
		RowlandAzimuth: cfg.detectorAzimuth,
	}.Surface()
	if err != nil {
		return nil, err
	}

	return &System{
		scene: scene,
		// Fixed physical light-path order; never reordered.
		surfaces:      []optic.Surface{front, feed, grating, detector},
		wavelengthMin: cfg.wavelengthMin,
		wavelengthMax: cfg.wavelengthMax,
		resolution:    cfg.resolution,
	}, nil
}

// Default returns the as-designed FURST instrument. It panics only if the
// documented instrument constants are themselves inconsistent, which is a
// programming error, not a runtime condition.
func Default() *System {
	sys, err := New()
	if err != nil {
		panic("furstoptics: default instrument invalid: " + err.Error())
	}
	return sys
}
