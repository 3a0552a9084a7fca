package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/sun-data/furstoptics/geom"
)

// Canvas is a rectangular pixel buffer with the small set of drawing
// operations the instrument schematic needs: filled polygons, stroked
// polylines, and text labels.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas with the given dimensions, cleared to white.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	c.Clear(color.White)
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPolygon fills the closed polygon through the given points.
func (c *Canvas) FillPolygon(pts []geom.Vec2, col color.Color) {
	if len(pts) < 3 {
		return
	}
	r := vector.NewRasterizer(c.Width(), c.Height())
	r.DrawOp = draw.Over
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// StrokeLine draws a straight line segment of the given width.
func (c *Canvas) StrokeLine(a, b geom.Vec2, width float64, col color.Color) {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return
	}
	// Perpendicular offset of half the stroke width.
	n := geom.V2(-d.Y, d.X).Div(length).Mul(width / 2)
	c.FillPolygon([]geom.Vec2{
		a.Add(n), b.Add(n), b.Sub(n), a.Sub(n),
	}, col)
}

// StrokePolyline draws connected line segments through the given points.
func (c *Canvas) StrokePolyline(pts []geom.Vec2, width float64, col color.Color) {
	for i := 1; i < len(pts); i++ {
		c.StrokeLine(pts[i-1], pts[i], width, col)
	}
}

// Label draws a text label with its baseline starting at p.
func (c *Canvas) Label(p geom.Vec2, text string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(p.X), int(p.Y)),
	}
	d.DrawString(text)
}

// EncodePNG writes the canvas as a PNG to the given file path.
func (c *Canvas) EncodePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
