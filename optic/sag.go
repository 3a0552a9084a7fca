package optic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sag describes the shape of an optical surface in its local frame. The
// vertex is at the origin and the sag depth is measured along +Z; the
// center of curvature, where one exists, lies on the +Z axis.
type Sag interface {
	// Depth returns the surface height along +Z at the aperture point
	// (x, y).
	Depth(x, y float64) float64

	// Normal returns the unit surface normal at the aperture point (x, y).
	Normal(x, y float64) r3.Vec

	// Intersect returns the intersection of the ray (origin, dir) with the
	// surface nearest the vertex, in the local frame. The second return is
	// false if the ray misses.
	Intersect(origin, dir r3.Vec) (r3.Vec, bool)

	// Validate reports whether the sag parameters are physical.
	Validate() error
}

// intersectTolerance rejects self-intersections at the ray origin.
const intersectTolerance = 1e-9

// FlatSag is a plane surface (zero sag everywhere). It is the implicit
// shape of any Surface with a nil Sag.
type FlatSag struct{}

// Depth implements Sag.
func (FlatSag) Depth(x, y float64) float64 { return 0 }

// Normal implements Sag.
func (FlatSag) Normal(x, y float64) r3.Vec { return r3.Vec{Z: 1} }

// Intersect implements Sag.
func (FlatSag) Intersect(origin, dir r3.Vec) (r3.Vec, bool) {
	if dir.Z == 0 {
		return r3.Vec{}, false
	}
	t := -origin.Z / dir.Z
	if t < intersectTolerance {
		return r3.Vec{}, false
	}
	return r3.Add(origin, r3.Scale(t, dir)), true
}

// Validate implements Sag.
func (FlatSag) Validate() error { return nil }

// SphericalSag is a spherical surface of the given curvature radius, with
// the center of curvature at (0, 0, Radius).
type SphericalSag struct {
	// Radius is the radius of curvature in mm. Must be positive.
	Radius float64
}

// Depth implements Sag.
func (s SphericalSag) Depth(x, y float64) float64 {
	return s.Radius - math.Sqrt(s.Radius*s.Radius-x*x-y*y)
}

// Normal implements Sag.
func (s SphericalSag) Normal(x, y float64) r3.Vec {
	p := r3.Vec{X: x, Y: y, Z: s.Depth(x, y)}
	return r3.Unit(r3.Sub(r3.Vec{Z: s.Radius}, p))
}

// Intersect implements Sag.
func (s SphericalSag) Intersect(origin, dir r3.Vec) (r3.Vec, bool) {
	return intersectSphere(origin, dir, r3.Vec{Z: s.Radius}, s.Radius)
}

// Validate implements Sag.
func (s SphericalSag) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("%w: spherical sag radius %v mm", ErrInvalidRadius, s.Radius)
	}
	return nil
}

// CylindricalSag is a cylindrical surface whose axis is parallel to the
// local Y axis, with the center line at (0, y, Radius).
type CylindricalSag struct {
	// Radius is the radius of curvature in mm. Must be positive.
	Radius float64
}

// Depth implements Sag.
func (s CylindricalSag) Depth(x, y float64) float64 {
	return s.Radius - math.Sqrt(s.Radius*s.Radius-x*x)
}

// Normal implements Sag.
func (s CylindricalSag) Normal(x, y float64) r3.Vec {
	p := r3.Vec{X: x, Z: s.Depth(x, y)}
	return r3.Unit(r3.Sub(r3.Vec{Z: s.Radius}, p))
}

// Intersect implements Sag.
func (s CylindricalSag) Intersect(origin, dir r3.Vec) (r3.Vec, bool) {
	// Project onto the XZ plane: the cylinder is a circle of radius R
	// centered at (0, R) there.
	o := r3.Vec{X: origin.X, Z: origin.Z}
	d := r3.Vec{X: dir.X, Z: dir.Z}
	p, ok := intersectSphere(o, d, r3.Vec{Z: s.Radius}, s.Radius)
	if !ok {
		return r3.Vec{}, false
	}
	// Recover the ray parameter from the projected hit to fill in Y.
	var t float64
	switch {
	case d.Z != 0:
		t = (p.Z - o.Z) / d.Z
	case d.X != 0:
		t = (p.X - o.X) / d.X
	default:
		return r3.Vec{}, false
	}
	return r3.Add(origin, r3.Scale(t, dir)), true
}

// Validate implements Sag.
func (s CylindricalSag) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("%w: cylindrical sag radius %v mm", ErrInvalidRadius, s.Radius)
	}
	return nil
}

// intersectSphere returns the ray/sphere intersection closest to the sag
// vertex (smallest |Z|), which for an optical surface is the physically
// meaningful sheet of the sphere.
func intersectSphere(origin, dir, center r3.Vec, radius float64) (r3.Vec, bool) {
	oc := r3.Sub(origin, center)
	a := r3.Dot(dir, dir)
	if a == 0 {
		return r3.Vec{}, false
	}
	b := 2 * r3.Dot(oc, dir)
	c := r3.Dot(oc, oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return r3.Vec{}, false
	}
	sq := math.Sqrt(disc)
	best := r3.Vec{}
	found := false
	for _, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t < intersectTolerance {
			continue
		}
		p := r3.Add(origin, r3.Scale(t, dir))
		if !found || math.Abs(p.Z) < math.Abs(best.Z) {
			best = p
			found = true
		}
	}
	return best, found
}
