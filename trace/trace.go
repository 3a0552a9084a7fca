// Package trace propagates rays sequentially through the FURST optical
// model. The trace is idealized: surfaces are intersected exactly, mirrors
// reflect specularly, and the grating applies the scalar grating equation
// in its local dispersion plane. A ray that misses a clear aperture is
// flagged vignetted rather than reported as an error; vignetting is
// ordinary instrument behavior, not a model misconfiguration.
package trace

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sun-data/furstoptics"
	"github.com/sun-data/furstoptics/optic"
)

// nanometer is one nm expressed in the model's mm length unit.
const nanometer = 1e-6

// Ray is a single ray in instrument coordinates.
type Ray struct {
	// Origin is the current ray position in mm.
	Origin r3.Vec

	// Dir is the propagation direction. It need not be normalized on
	// input; the tracer normalizes it.
	Dir r3.Vec

	// Wavelength in nm. Only the grating consumes it.
	Wavelength float64

	// Vignetted marks a ray that missed a clear aperture or left the
	// diffraction cone. Vignetted rays stop propagating.
	Vignetted bool
}

// Through propagates rays through the system's light path in order.
func Through(sys *furstoptics.System, rays []Ray) []Ray {
	return Propagate(sys.Surfaces(), rays)
}

// Propagate pushes each ray through the given surfaces in order and
// returns the resulting rays. The input slice is not modified.
func Propagate(surfaces []optic.Surface, rays []Ray) []Ray {
	out := make([]Ray, len(rays))
	copy(out, rays)

	vignetted := 0
	for i := range out {
		out[i].Dir = r3.Unit(out[i].Dir)
		for _, s := range surfaces {
			if out[i].Vignetted {
				break
			}
			out[i] = intersect(s, out[i])
		}
		if out[i].Vignetted {
			vignetted++
		}
	}
	furstoptics.Logger().Debug("trace complete",
		"rays", len(out),
		"surfaces", len(surfaces),
		"vignetted", vignetted,
	)
	return out
}

// intersect advances the ray to the surface and applies its reflection
// and diffraction, all in the surface's local frame.
func intersect(s optic.Surface, ray Ray) Ray {
	inv := s.Transform.Invert()
	o := inv.Apply(ray.Origin)
	d := inv.ApplyDirection(ray.Dir)

	p, hit := s.Shape().Intersect(o, d)
	if !hit {
		ray.Vignetted = true
		return ray
	}
	if s.Aperture != nil && !s.Aperture.Contains(p.X, p.Y) {
		ray.Vignetted = true
		ray.Origin = s.Transform.Apply(p)
		return ray
	}

	if s.Material != nil {
		n := s.Shape().Normal(p.X, p.Y)
		d = reflect(d, n)
	}
	if s.Rulings != nil {
		var ok bool
		d, ok = diffract(d, *s.Rulings, ray.Wavelength)
		if !ok {
			ray.Vignetted = true
			ray.Origin = s.Transform.Apply(p)
			return ray
		}
	}

	ray.Origin = s.Transform.Apply(p)
	ray.Dir = s.Transform.ApplyDirection(d)
	return ray
}

// reflect mirrors the direction d about the surface normal n.
func reflect(d, n r3.Vec) r3.Vec {
	return r3.Sub(d, r3.Scale(2*r3.Dot(d, n), n))
}

// diffract applies the grating equation in the local dispersion plane.
// Grooves run along local Y, so the tangential X component of the unit
// direction picks up m·λ·σ. The result is false when the requested order
// is evanescent at this wavelength and geometry.
func diffract(d r3.Vec, r optic.Rulings, wavelength float64) (r3.Vec, bool) {
	dx := d.X + float64(r.Order)*wavelength*nanometer*r.Density
	dz2 := 1 - dx*dx - d.Y*d.Y
	if dz2 < 0 {
		return r3.Vec{}, false
	}
	dz := math.Sqrt(dz2)
	if d.Z < 0 {
		dz = -dz
	}
	return r3.Vec{X: dx, Y: d.Y, Z: dz}, true
}
