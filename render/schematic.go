// Package render draws schematic diagrams of the FURST optical model.
//
// The schematic is the cross-section traditionally used in Rowland
// spectrograph drawings: the instrument projected onto the dispersion
// plane, with the optic axis (Z) horizontal and the dispersion direction
// (X) vertical, the Rowland circle drawn underneath the surfaces.
package render

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sun-data/furstoptics"
	"github.com/sun-data/furstoptics/geom"
	"github.com/sun-data/furstoptics/optic"
)

// Schematic palette.
var (
	colorCircle  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorSurface = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorLabel   = color.RGBA{A: 0xff}
)

// openSurfaceHalfExtent sizes surfaces with no aperture (open plates) in
// the schematic, in mm.
const openSurfaceHalfExtent = 80.0

// circleSamples is the polyline resolution of the Rowland circle.
const circleSamples = 256

// sagSamples is the polyline resolution of a surface cross-section.
const sagSamples = 64

// Schematic renders the system's dispersion-plane cross-section onto a
// new canvas of the given size.
func Schematic(sys *furstoptics.System, width, height int) *Canvas {
	c := NewCanvas(width, height)
	proj := fitProjection(sys, width, height)

	drawRowlandCircle(c, proj, rowlandRadius(sys))
	for _, s := range sys.Surfaces() {
		drawSurface(c, proj, s)
	}

	furstoptics.Logger().Info("schematic rendered",
		"width", width,
		"height", height,
		"surfaces", len(sys.Surfaces()),
	)
	return c
}

// WritePNG renders the schematic and writes it to the given path.
func WritePNG(sys *furstoptics.System, path string, width, height int) error {
	if err := Schematic(sys, width, height).EncodePNG(path); err != nil {
		return err
	}
	furstoptics.Logger().Info("schematic written", "path", path)
	return nil
}

// projection maps the dispersion plane (world Z right, world X up) onto
// canvas pixels with a uniform scale.
type projection struct {
	scale  float64
	center geom.Vec2 // world (z, x) at the canvas center
	w, h   int
}

func (p projection) toCanvas(world r3.Vec) geom.Vec2 {
	return geom.V2(
		float64(p.w)/2+(world.Z-p.center.X)*p.scale,
		float64(p.h)/2-(world.X-p.center.Y)*p.scale,
	)
}

// fitProjection chooses a scale so the Rowland circle and every surface
// vertex fit with a margin.
func fitProjection(sys *furstoptics.System, width, height int) projection {
	// The Rowland circle is centered at the origin; its radius is half
	// the grating curvature radius when the grating is present.
	radius := rowlandRadius(sys)
	minZ, maxZ := -radius, radius
	minX, maxX := -radius, radius
	for _, s := range sys.Surfaces() {
		v := s.Transform.Apply(r3.Vec{})
		minZ = math.Min(minZ, v.Z)
		maxZ = math.Max(maxZ, v.Z)
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
	}
	spanZ := maxZ - minZ
	spanX := maxX - minX
	const margin = 1.1
	scale := math.Min(
		float64(width)/(spanZ*margin),
		float64(height)/(spanX*margin),
	)
	return projection{
		scale:  scale,
		center: geom.V2((minZ+maxZ)/2, (minX+maxX)/2),
		w:      width,
		h:      height,
	}
}

// rowlandRadius recovers the Rowland radius from the grating curvature.
func rowlandRadius(sys *furstoptics.System) float64 {
	if g, ok := sys.Grating(); ok {
		if sag, ok := g.Sag.(optic.SphericalSag); ok {
			return sag.Radius / 2
		}
	}
	return furstoptics.RowlandRadius
}

func drawRowlandCircle(c *Canvas, proj projection, radius float64) {
	pts := make([]geom.Vec2, 0, circleSamples+1)
	for i := 0; i <= circleSamples; i++ {
		a := 2 * math.Pi * float64(i) / circleSamples
		pts = append(pts, proj.toCanvas(r3.Vec{
			X: radius * math.Sin(a),
			Z: radius * math.Cos(a),
		}))
	}
	c.StrokePolyline(pts, 1, colorCircle)
}

func drawSurface(c *Canvas, proj projection, s optic.Surface) {
	half := openSurfaceHalfExtent
	if s.Aperture != nil {
		half = s.Aperture.HalfExtent().X
	}
	// Sample the sag cross-section at y = 0 in the local frame and map
	// it through the surface transform into the dispersion plane.
	shape := s.Shape()
	pts := make([]geom.Vec2, 0, sagSamples+1)
	for i := 0; i <= sagSamples; i++ {
		x := -half + 2*half*float64(i)/sagSamples
		world := s.Transform.Apply(r3.Vec{X: x, Z: shape.Depth(x, 0)})
		pts = append(pts, proj.toCanvas(world))
	}
	c.StrokePolyline(pts, 2, colorSurface)

	vertex := proj.toCanvas(s.Transform.Apply(r3.Vec{}))
	c.Label(vertex.Add(geom.V2(6, -6)), s.Name, colorLabel)
}
