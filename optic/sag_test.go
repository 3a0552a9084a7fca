package optic

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func TestSphericalSagDepth(t *testing.T) {
	s := SphericalSag{Radius: 2000}
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"vertex", 0, 0, 0},
		{"on axis x", 100, 0, 2000 - math.Sqrt(2000*2000-100*100)},
		{"diagonal", 30, 40, 2000 - math.Sqrt(2000*2000-2500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Depth(tt.x, tt.y); !scalar.EqualWithinAbs(got, tt.want, tol) {
				t.Errorf("Depth(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSagNormals(t *testing.T) {
	// At the vertex every sag normal points along +Z.
	sags := []Sag{FlatSag{}, SphericalSag{Radius: 1000}, CylindricalSag{Radius: 25}}
	for _, s := range sags {
		n := s.Normal(0, 0)
		if !scalar.EqualWithinAbs(n.Z, 1, tol) || !scalar.EqualWithinAbs(r3.Norm(n), 1, tol) {
			t.Errorf("%T.Normal(0,0) = %+v, want unit +Z", s, n)
		}
	}
	// Off axis the spherical normal tilts back toward the center of
	// curvature, i.e. opposite the aperture coordinate.
	n := SphericalSag{Radius: 1000}.Normal(100, 0)
	if n.X >= 0 {
		t.Errorf("spherical off-axis normal X = %v, want negative", n.X)
	}
}

func TestSagIntersect(t *testing.T) {
	tests := []struct {
		name   string
		sag    Sag
		origin r3.Vec
		dir    r3.Vec
		want   r3.Vec
		hit    bool
	}{
		{
			name:   "flat axial",
			sag:    FlatSag{},
			origin: r3.Vec{Z: -10},
			dir:    r3.Vec{Z: 1},
			want:   r3.Vec{},
			hit:    true,
		},
		{
			name:   "flat parallel miss",
			sag:    FlatSag{},
			origin: r3.Vec{Z: -10},
			dir:    r3.Vec{X: 1},
			hit:    false,
		},
		{
			name:   "sphere axial hits vertex",
			sag:    SphericalSag{Radius: 1000},
			origin: r3.Vec{Z: -50},
			dir:    r3.Vec{Z: 1},
			want:   r3.Vec{},
			hit:    true,
		},
		{
			name:   "sphere off-axis hits sag depth",
			sag:    SphericalSag{Radius: 1000},
			origin: r3.Vec{X: 100, Z: -50},
			dir:    r3.Vec{Z: 1},
			want:   r3.Vec{X: 100, Z: 1000 - math.Sqrt(1000*1000-100*100)},
			hit:    true,
		},
		{
			name:   "sphere wide miss",
			sag:    SphericalSag{Radius: 100},
			origin: r3.Vec{X: 500, Z: -50},
			dir:    r3.Vec{Z: 1},
			hit:    false,
		},
		{
			name:   "cylinder axial",
			sag:    CylindricalSag{Radius: 25},
			origin: r3.Vec{Y: 3, Z: -10},
			dir:    r3.Vec{Z: 1},
			want:   r3.Vec{Y: 3},
			hit:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.sag.Intersect(tt.origin, tt.dir)
			if hit != tt.hit {
				t.Fatalf("Intersect hit = %v, want %v", hit, tt.hit)
			}
			if !hit {
				return
			}
			if !scalar.EqualWithinAbs(got.X, tt.want.X, tol) ||
				!scalar.EqualWithinAbs(got.Y, tt.want.Y, tol) ||
				!scalar.EqualWithinAbs(got.Z, tt.want.Z, tol) {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIntersectConsistentWithDepth(t *testing.T) {
	// An axial ray through (x, y) must land on the sag surface.
	sags := []Sag{SphericalSag{Radius: 2000}, CylindricalSag{Radius: 50}}
	for _, s := range sags {
		p, hit := s.Intersect(r3.Vec{X: 10, Y: 4, Z: -100}, r3.Vec{Z: 1})
		if !hit {
			t.Fatalf("%T: axial ray missed", s)
		}
		if want := s.Depth(p.X, p.Y); !scalar.EqualWithinAbs(p.Z, want, tol) {
			t.Errorf("%T: intersection z = %v, Depth = %v", s, p.Z, want)
		}
	}
}
