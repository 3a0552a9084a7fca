package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/sun-data/furstoptics"
	"github.com/sun-data/furstoptics/geom"
)

func TestCanvasStrokeLine(t *testing.T) {
	c := NewCanvas(64, 64)
	black := color.RGBA{A: 0xff}
	c.StrokeLine(geom.V2(0, 32), geom.V2(64, 32), 2, black)

	r, g, b, _ := c.Image().At(32, 32).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("pixel on the stroked line = %v,%v,%v, want black", r, g, b)
	}
	r, g, b, _ = c.Image().At(32, 5).RGBA()
	if r == 0 && g == 0 && b == 0 {
		t.Error("pixel far from the line is black")
	}
}

func TestSchematicDrawsSomething(t *testing.T) {
	c := Schematic(furstoptics.Default(), 640, 480)
	if c.Width() != 640 || c.Height() != 480 {
		t.Fatalf("canvas size = %dx%d", c.Width(), c.Height())
	}

	inked := 0
	img := c.Image()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Fatal("schematic canvas is entirely white")
	}
}

func TestSchematicDeterministic(t *testing.T) {
	sys := furstoptics.Default()
	a := Schematic(sys, 320, 240).Image()
	b := Schematic(sys, 320, 240).Image()
	if len(a.Pix) != len(b.Pix) {
		t.Fatal("pixel buffers differ in size")
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("schematics differ at byte %d", i)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "furst.png")
	if err := WritePNG(furstoptics.Default(), path, 320, 240); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("wrote an empty PNG")
	}
}
