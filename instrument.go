package furstoptics

import "math"

// As-designed FURST instrument parameters. These are the documented
// nominal values; every one of them can be overridden at construction
// time through the Option functions.
const (
	// WavelengthMin and WavelengthMax bound the science band in nm.
	WavelengthMin = 120.0
	WavelengthMax = 180.0

	// TargetResolution is the design spectral resolving power λ/Δλ.
	TargetResolution = 25000.0

	// RowlandRadius is the radius of the Rowland circle in mm.
	RowlandRadius = 1000.0

	// GratingRadius is the curvature radius of the grating in mm. The
	// classical Rowland mount puts it at twice the Rowland radius.
	GratingRadius = 2 * RowlandRadius

	// GrooveDensity is the grating groove density in grooves per mm.
	GrooveDensity = 3600.0

	// DiffractionOrder is the design diffraction order.
	DiffractionOrder = 1

	// GratingAzimuth is the grating position on the Rowland circle, in
	// radians.
	GratingAzimuth = 175 * math.Pi / 180

	// GratingWidthClear and GratingWidthMech are the full widths of the
	// grating clear aperture and substrate, in mm.
	GratingWidthClear = 30.0
	GratingWidthMech  = 34.0

	// FeedOpticAzimuth places the virtual image of the Sun formed by the
	// feed optic on the Rowland circle, in radians.
	FeedOpticAzimuth = 25 * math.Pi / 180

	// FeedOpticRadius is the curvature radius of the cylindrical feed
	// optic in mm.
	FeedOpticRadius = 25.0

	// FeedApertureSubtent is the angular width of the feed optic clear
	// aperture in radians.
	FeedApertureSubtent = 10 * math.Pi / 180

	// FeedApertureHeight is the height of the feed optic clear aperture
	// in mm.
	FeedApertureHeight = 10.0

	// FeedMarginPolishing and FeedMarginMounting are the handling margins
	// of the feed optic substrate, in mm.
	FeedMarginPolishing = 2.0
	FeedMarginMounting  = 3.0

	// DetectorAzimuth is the detector position on the Rowland circle, in
	// radians.
	DetectorAzimuth = 10 * math.Pi / 180

	// DetectorPixelPitch is the detector pixel width in mm.
	DetectorPixelPitch = 0.015

	// DetectorPixelCount is the number of pixels along each detector
	// axis.
	DetectorPixelCount = 4096

	// DetectorGain is the detector gain in electrons per DN.
	DetectorGain = 2.5

	// DetectorReadoutNoise is the readout noise in DN.
	DetectorReadoutNoise = 4.0

	// DetectorBitsADC is the ADC resolution in bits.
	DetectorBitsADC = 16

	// FrontApertureRadius is the clear radius of the entrance aperture
	// plate in mm.
	FrontApertureRadius = 75.0

	// FrontApertureDistance is the position of the entrance plate along
	// the optic axis, in mm.
	FrontApertureDistance = 1500.0
)
