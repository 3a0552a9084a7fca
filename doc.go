// Package furstoptics provides a static, declarative optical model of the
// FURST sounding-rocket ultraviolet spectrograph.
//
// # Overview
//
// FURST (Full-sun Ultraviolet Rocket SpecTrograph) is a Rowland-circle
// spectrograph observing the full solar disk across the 120-180 nm science
// band. This package assembles the instrument's fixed geometry - entrance
// aperture, cylindrical feed optic, concave spherical grating, and imaging
// detector - into a single immutable System value for consumption by the
// data-reduction pipeline.
//
// # Quick Start
//
//	import "github.com/sun-data/furstoptics"
//
//	// The as-designed instrument
//	sys := furstoptics.Default()
//
//	// Named physical overrides
//	sys, err := furstoptics.New(
//	    furstoptics.WithGrooveDensity(3200),
//	)
//
// # Architecture
//
// The model is organized into:
//   - Root package: System assembly, named overrides, instrument constants
//   - geom: 2D vectors and rigid 3D transforms (gonum spatial/r3)
//   - optic: surface primitives (sags, apertures, rulings, materials)
//   - sources, apertures, feedoptics, gratings, detectors: the FURST
//     components, each lowering to an optic.Surface
//   - trace: idealized sequential ray propagation through a System
//   - render: schematic PNG rendering of the instrument cross-section
//
// # Conventions
//
// Lengths are in millimeters, wavelengths in nanometers, angles in
// radians. Instrument coordinates put the Rowland circle in the X-Z plane
// with the optic axis along +Z; see package geom.
//
// # Determinism
//
// Builders are pure: calling them twice with the same options yields
// value-equal Systems. Invalid physical parameters fail construction
// immediately with a descriptive error; no partially built System is ever
// returned.
package furstoptics

// Version information
const (
	// Version is the current version of the model.
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
