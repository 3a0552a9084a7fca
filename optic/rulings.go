package optic

import "fmt"

// Rulings models the periodic groove structure of a diffraction grating.
// Grooves run parallel to the local Y axis, so dispersion happens in the
// local XZ plane.
type Rulings struct {
	// Density is the groove density in grooves per mm. Must be positive.
	Density float64

	// Order is the diffraction order the instrument is designed around.
	// Must be nonzero; order 0 is specular reflection and needs no rulings.
	Order int
}

// Period returns the groove spacing in mm.
func (r Rulings) Period() float64 {
	return 1 / r.Density
}

// Validate reports whether the ruling parameters are physical.
func (r Rulings) Validate() error {
	if r.Density <= 0 {
		return fmt.Errorf("%w: groove density %v /mm", ErrInvalidRulings, r.Density)
	}
	if r.Order == 0 {
		return fmt.Errorf("%w: diffraction order 0", ErrInvalidRulings)
	}
	return nil
}
