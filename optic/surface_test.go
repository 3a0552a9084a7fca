package optic

import (
	"errors"
	"strings"
	"testing"

	"github.com/sun-data/furstoptics/geom"
)

func TestSurfaceValidate(t *testing.T) {
	valid := Surface{
		Name:     "grating",
		Sag:      SphericalSag{Radius: 2000},
		Material: Mirror{},
		Aperture: RectangularAperture{HalfWidth: geom.V2(15, 15)},
		Rulings:  &Rulings{Density: 3600, Order: 1},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid surface failed validation: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Surface)
		wantErr error
	}{
		{
			name:    "negative curvature radius",
			mutate:  func(s *Surface) { s.Sag = SphericalSag{Radius: -2000} },
			wantErr: ErrInvalidRadius,
		},
		{
			name:    "zero cylindrical radius",
			mutate:  func(s *Surface) { s.Sag = CylindricalSag{} },
			wantErr: ErrInvalidRadius,
		},
		{
			name:    "zero groove density",
			mutate:  func(s *Surface) { s.Rulings = &Rulings{Density: 0, Order: 1} },
			wantErr: ErrInvalidRulings,
		},
		{
			name:    "negative groove density",
			mutate:  func(s *Surface) { s.Rulings = &Rulings{Density: -3600, Order: 1} },
			wantErr: ErrInvalidRulings,
		},
		{
			name:    "zero diffraction order",
			mutate:  func(s *Surface) { s.Rulings = &Rulings{Density: 3600, Order: 0} },
			wantErr: ErrInvalidRulings,
		},
		{
			name:    "degenerate clear aperture",
			mutate:  func(s *Surface) { s.Aperture = RectangularAperture{} },
			wantErr: ErrInvalidAperture,
		},
		{
			name:    "negative circular aperture",
			mutate:  func(s *Surface) { s.Aperture = CircularAperture{Radius: -1} },
			wantErr: ErrInvalidAperture,
		},
		{
			name:    "degenerate mechanical aperture",
			mutate:  func(s *Surface) { s.ApertureMech = RectangularAperture{HalfWidth: geom.V2(10, 0)} },
			wantErr: ErrInvalidAperture,
		},
		{
			name: "coating layer without chemical",
			mutate: func(s *Surface) {
				s.Material = MultilayerMirror{
					Layers:    []Layer{{Thickness: 25}},
					Substrate: Layer{Chemical: "SiO2", Thickness: 3},
				}
			},
			wantErr: ErrInvalidMaterial,
		},
		{
			name: "coating layer with zero thickness",
			mutate: func(s *Surface) {
				s.Material = MultilayerMirror{
					Layers:    []Layer{{Chemical: "Al", Thickness: 0}},
					Substrate: Layer{Chemical: "SiO2", Thickness: 3},
				}
			},
			wantErr: ErrInvalidMaterial,
		},
		{
			name: "multilayer with no layers",
			mutate: func(s *Surface) {
				s.Material = MultilayerMirror{Substrate: Layer{Chemical: "SiO2", Thickness: 3}}
			},
			wantErr: ErrInvalidMaterial,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), `"grating"`) {
				t.Errorf("error does not name the surface: %v", err)
			}
		})
	}
}

func TestSurfaceMustBeNamed(t *testing.T) {
	if err := (Surface{}).Validate(); err == nil {
		t.Fatal("unnamed surface passed validation")
	}
}

func TestShapeDefaultsToPlane(t *testing.T) {
	s := Surface{Name: "front aperture"}
	if _, ok := s.Shape().(FlatSag); !ok {
		t.Fatalf("Shape() of nil sag = %T, want FlatSag", s.Shape())
	}
}

func TestApertureContains(t *testing.T) {
	tests := []struct {
		name string
		ap   Aperture
		x, y float64
		want bool
	}{
		{"circle inside", CircularAperture{Radius: 10}, 6, 8, true},
		{"circle outside", CircularAperture{Radius: 10}, 6.01, 8, false},
		{"rect inside", RectangularAperture{HalfWidth: geom.V2(5, 2)}, -5, 2, true},
		{"rect outside", RectangularAperture{HalfWidth: geom.V2(5, 2)}, 0, 2.1, false},
		{"rect offset", RectangularAperture{HalfWidth: geom.V2(1, 1), Offset: geom.V2(10, 0)}, 10.5, 0, true},
		{"rect offset excludes origin", RectangularAperture{HalfWidth: geom.V2(1, 1), Offset: geom.V2(10, 0)}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ap.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRulingsPeriod(t *testing.T) {
	r := Rulings{Density: 3600, Order: 1}
	want := 1.0 / 3600
	if got := r.Period(); got != want {
		t.Errorf("Period() = %v, want %v", got, want)
	}
}
