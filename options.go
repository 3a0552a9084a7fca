package furstoptics

// Option overrides one named physical parameter of the instrument during
// construction. Options carry no validation themselves; New validates the
// assembled configuration and fails fast on unphysical values.
//
// Example:
//
//	sys, err := furstoptics.New(
//	    furstoptics.WithRowlandRadius(1200),
//	    furstoptics.WithGrooveDensity(3200),
//	)
type Option func(*config)

// config holds the full set of overridable instrument parameters.
type config struct {
	rowlandRadius         float64
	wavelengthMin         float64
	wavelengthMax         float64
	resolution            float64
	grooveDensity         float64
	order                 int
	gratingRadius         float64
	gratingAzimuth        float64
	feedAzimuth           float64
	detectorAzimuth       float64
	frontApertureRadius   float64
	frontApertureDistance float64
	sceneAngularRadius    float64
}

// defaultConfig returns the as-designed instrument parameters.
func defaultConfig() config {
	return config{
		rowlandRadius:         RowlandRadius,
		wavelengthMin:         WavelengthMin,
		wavelengthMax:         WavelengthMax,
		resolution:            TargetResolution,
		grooveDensity:         GrooveDensity,
		order:                 DiffractionOrder,
		gratingRadius:         GratingRadius,
		gratingAzimuth:        GratingAzimuth,
		feedAzimuth:           FeedOpticAzimuth,
		detectorAzimuth:       DetectorAzimuth,
		frontApertureRadius:   FrontApertureRadius,
		frontApertureDistance: FrontApertureDistance,
	}
}

// WithRowlandRadius sets the Rowland circle radius in mm. Unless
// WithGratingRadius is also given, the grating curvature radius follows
// at twice this value.
func WithRowlandRadius(mm float64) Option {
	return func(c *config) {
		c.rowlandRadius = mm
		c.gratingRadius = 2 * mm
	}
}

// WithGratingRadius sets the grating curvature radius in mm,
// independently of the Rowland radius.
func WithGratingRadius(mm float64) Option {
	return func(c *config) { c.gratingRadius = mm }
}

// WithWavelengthRange sets the declared wavelength range in nm.
func WithWavelengthRange(min, max float64) Option {
	return func(c *config) {
		c.wavelengthMin = min
		c.wavelengthMax = max
	}
}

// WithTargetResolution sets the target spectral resolving power λ/Δλ.
func WithTargetResolution(r float64) Option {
	return func(c *config) { c.resolution = r }
}

// WithGrooveDensity sets the grating groove density in grooves per mm.
func WithGrooveDensity(perMM float64) Option {
	return func(c *config) { c.grooveDensity = perMM }
}

// WithDiffractionOrder sets the design diffraction order.
func WithDiffractionOrder(m int) Option {
	return func(c *config) { c.order = m }
}

// WithGratingAzimuth sets the grating position on the Rowland circle, in
// radians.
func WithGratingAzimuth(rad float64) Option {
	return func(c *config) { c.gratingAzimuth = rad }
}

// WithFeedOpticAzimuth sets the feed optic's virtual-image azimuth on the
// Rowland circle, in radians.
func WithFeedOpticAzimuth(rad float64) Option {
	return func(c *config) { c.feedAzimuth = rad }
}

// WithDetectorAzimuth sets the detector position on the Rowland circle,
// in radians.
func WithDetectorAzimuth(rad float64) Option {
	return func(c *config) { c.detectorAzimuth = rad }
}

// WithFrontAperture sets the entrance plate clear radius and its position
// along the optic axis, both in mm.
func WithFrontAperture(radius, distance float64) Option {
	return func(c *config) {
		c.frontApertureRadius = radius
		c.frontApertureDistance = distance
	}
}

// WithSceneAngularRadius sets the angular radius of the observed solar
// disk in radians. Zero means the mean solar angular radius.
func WithSceneAngularRadius(rad float64) Option {
	return func(c *config) { c.sceneAngularRadius = rad }
}
