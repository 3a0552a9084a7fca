package optic

import "errors"

var (
	// ErrInvalidRadius indicates a non-positive curvature radius.
	ErrInvalidRadius = errors.New("optic: curvature radius must be positive")
	// ErrInvalidAperture indicates non-positive aperture dimensions.
	ErrInvalidAperture = errors.New("optic: aperture dimensions must be positive")
	// ErrInvalidRulings indicates a non-positive groove density or a zero
	// diffraction order.
	ErrInvalidRulings = errors.New("optic: rulings must have positive groove density and nonzero order")
	// ErrInvalidMaterial indicates a coating layer with no chemical formula
	// or a non-positive thickness.
	ErrInvalidMaterial = errors.New("optic: coating layers must name a chemical and have positive thickness")
)
