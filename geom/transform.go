package geom

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a rigid 3D transform (rotation followed by translation)
// placing an optical surface in instrument coordinates. The zero value is
// the identity transform.
type Transform struct {
	r r3.Rotation
	t r3.Vec
}

// rotation returns the rotation part, mapping the zero value to the
// identity quaternion so that the zero Transform is usable.
func (a Transform) rotation() r3.Rotation {
	if a.r == (r3.Rotation{}) {
		return r3.Rotation(quat.Number{Real: 1})
	}
	return a.r
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{r: r3.Rotation(quat.Number{Real: 1})}
}

// Translate returns a pure translation by t.
func Translate(t r3.Vec) Transform {
	return Transform{r: r3.Rotation(quat.Number{Real: 1}), t: t}
}

// RotateX returns a rotation by angle radians about the X axis.
func RotateX(angle float64) Transform {
	return Transform{r: r3.NewRotation(angle, r3.Vec{X: 1})}
}

// RotateY returns a rotation by angle radians about the Y axis.
func RotateY(angle float64) Transform {
	return Transform{r: r3.NewRotation(angle, r3.Vec{Y: 1})}
}

// RotateZ returns a rotation by angle radians about the Z axis.
func RotateZ(angle float64) Transform {
	return Transform{r: r3.NewRotation(angle, r3.Vec{Z: 1})}
}

// Then returns the transform equivalent to applying a first, then b.
func (a Transform) Then(b Transform) Transform {
	ra, rb := a.rotation(), b.rotation()
	return Transform{
		r: r3.Rotation(quat.Mul(quat.Number(rb), quat.Number(ra))),
		t: r3.Add(rb.Rotate(a.t), b.t),
	}
}

// Compose applies the given transforms in order: the first element acts on
// the surface's local frame first.
func Compose(steps ...Transform) Transform {
	out := Identity()
	for _, s := range steps {
		out = out.Then(s)
	}
	return out
}

// Apply transforms the point p from the local frame to the parent frame.
func (a Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(a.rotation().Rotate(p), a.t)
}

// ApplyDirection rotates the direction d without translating it.
func (a Transform) ApplyDirection(d r3.Vec) r3.Vec {
	return a.rotation().Rotate(d)
}

// Invert returns the inverse transform. Rotations are unit quaternions, so
// the inverse rotation is the conjugate.
func (a Transform) Invert() Transform {
	inv := r3.Rotation(quat.Conj(quat.Number(a.rotation())))
	return Transform{
		r: inv,
		t: r3.Scale(-1, inv.Rotate(a.t)),
	}
}

// RowlandTransform places a component on the Rowland circle of the given
// radius at the given azimuth: translate to (0, 0, radius), then rotate
// about Y by azimuth. The component ends up at (radius·sin a, 0,
// radius·cos a) facing the circle's center.
func RowlandTransform(radius, azimuth float64) Transform {
	return Translate(r3.Vec{Z: radius}).Then(RotateY(azimuth))
}

// OrientTransform applies a component's pointing adjustments: pitch about
// X, yaw about Y, roll about Z, then a translation offset from the nominal
// position. Zero values mean the component sits at its as-designed pose.
func OrientTransform(pitch, yaw, roll float64, translation r3.Vec) Transform {
	return Compose(
		RotateX(pitch),
		RotateY(yaw),
		RotateZ(roll),
		Translate(translation),
	)
}
