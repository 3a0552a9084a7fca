package optic

import "fmt"

// Material describes how a surface interacts with light. The model is
// declarative: materials carry the as-designed coating prescription, not a
// wave-optics efficiency calculation.
type Material interface {
	// Validate reports whether the material parameters are physical.
	Validate() error
}

// Mirror is an ideal reflective surface.
type Mirror struct{}

// Validate implements Material.
func (Mirror) Validate() error { return nil }

// Layer is a single chemical layer in a coating stack.
type Layer struct {
	// Chemical is the formula of the layer material, e.g. "MgF2".
	Chemical string

	// Thickness of the layer in nm.
	Thickness float64
}

// Validate reports whether the layer is physical.
func (l Layer) Validate() error {
	if l.Chemical == "" {
		return fmt.Errorf("%w: layer with empty chemical", ErrInvalidMaterial)
	}
	if l.Thickness <= 0 {
		return fmt.Errorf("%w: %s layer thickness %v", ErrInvalidMaterial, l.Chemical, l.Thickness)
	}
	return nil
}

// MultilayerMirror is a reflective coating built from a stack of thin
// layers on a substrate, ordered from the vacuum interface inward.
type MultilayerMirror struct {
	Layers    []Layer
	Substrate Layer
}

// Validate implements Material.
func (m MultilayerMirror) Validate() error {
	if len(m.Layers) == 0 {
		return fmt.Errorf("%w: multilayer mirror with no layers", ErrInvalidMaterial)
	}
	for _, l := range m.Layers {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return m.Substrate.Validate()
}
