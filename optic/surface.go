package optic

import (
	"fmt"

	"github.com/sun-data/furstoptics/geom"
)

// Surface is one optical element in the light path: a shape, the apertures
// bounding it, an optional coating, optional diffraction rulings, and the
// transform placing it in instrument coordinates. Surfaces are plain
// values and are never mutated after construction.
type Surface struct {
	// Name is the human-readable name of the element.
	Name string

	// Sag is the shape of the surface. nil means a plane.
	Sag Sag

	// Material is the coating of the surface. nil means the surface does
	// not alter rays (an aperture plate or reference surface).
	Material Material

	// Aperture is the clear aperture. nil means unbounded.
	Aperture Aperture

	// ApertureMech is the mechanical footprint of the substrate,
	// including polishing and mounting margins.
	ApertureMech Aperture

	// Rulings is non-nil only for diffraction gratings.
	Rulings *Rulings

	// IsFieldStop marks the surface limiting the instrument's field of
	// view.
	IsFieldStop bool

	// IsPupilStop marks the surface limiting the instrument's collecting
	// area.
	IsPupilStop bool

	// Transform places the surface's local frame in instrument
	// coordinates. The zero value leaves it at the origin.
	Transform geom.Transform
}

// Shape returns the surface sag, substituting a plane for nil.
func (s Surface) Shape() Sag {
	if s.Sag == nil {
		return FlatSag{}
	}
	return s.Sag
}

// Validate checks every non-nil part of the surface and returns the first
// violation, wrapped with the surface name. A valid Surface is safe to
// hand to the ray tracer and the renderer.
func (s Surface) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("optic: surface must be named")
	}
	if s.Sag != nil {
		if err := s.Sag.Validate(); err != nil {
			return fmt.Errorf("surface %q: %w", s.Name, err)
		}
	}
	if s.Material != nil {
		if err := s.Material.Validate(); err != nil {
			return fmt.Errorf("surface %q: %w", s.Name, err)
		}
	}
	for _, ap := range []Aperture{s.Aperture, s.ApertureMech} {
		if ap == nil {
			continue
		}
		if err := ap.Validate(); err != nil {
			return fmt.Errorf("surface %q: %w", s.Name, err)
		}
	}
	if s.Rulings != nil {
		if err := s.Rulings.Validate(); err != nil {
			return fmt.Errorf("surface %q: %w", s.Name, err)
		}
	}
	return nil
}
