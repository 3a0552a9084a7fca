package furstoptics

import "github.com/sun-data/furstoptics/optic"

// System is the ordered composition of optical surfaces describing the
// complete light path of the instrument, from entrance aperture to
// detector, plus the spectral metadata of the science band. Systems are
// immutable: all accessors return copies.
type System struct {
	scene         optic.Surface
	surfaces      []optic.Surface
	wavelengthMin float64
	wavelengthMax float64
	resolution    float64
}

// Scene returns the surface describing the observed scene (the solar
// disk), which sits ahead of the instrument proper.
func (s *System) Scene() optic.Surface {
	return s.scene
}

// Surfaces returns the surfaces of the light path in physical order:
// front aperture, feed optic, grating, detector. The returned slice is a
// copy; the System's ordering is fixed at construction and never changes.
func (s *System) Surfaces() []optic.Surface {
	out := make([]optic.Surface, len(s.surfaces))
	copy(out, s.surfaces)
	return out
}

// Surface returns the named surface of the light path.
func (s *System) Surface(name string) (optic.Surface, bool) {
	for _, sf := range s.surfaces {
		if sf.Name == name {
			return sf, true
		}
	}
	return optic.Surface{}, false
}

// Grating returns the diffracting surface of the light path.
func (s *System) Grating() (optic.Surface, bool) {
	for _, sf := range s.surfaces {
		if sf.Rulings != nil {
			return sf, true
		}
	}
	return optic.Surface{}, false
}

// Detector returns the final surface of the light path.
func (s *System) Detector() (optic.Surface, bool) {
	if len(s.surfaces) == 0 {
		return optic.Surface{}, false
	}
	return s.surfaces[len(s.surfaces)-1], true
}

// WavelengthRange returns the declared wavelength range of the system in
// nm. It always contains the FURST science band.
func (s *System) WavelengthRange() (min, max float64) {
	return s.wavelengthMin, s.wavelengthMax
}

// Resolution returns the target spectral resolving power λ/Δλ.
func (s *System) Resolution() float64 {
	return s.resolution
}
