// Command furstplot renders the FURST instrument schematic to a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/sun-data/furstoptics"
	"github.com/sun-data/furstoptics/render"
)

func main() {
	var (
		width   = flag.Int("width", 1024, "image width")
		height  = flag.Int("height", 768, "image height")
		output  = flag.String("output", "furst.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	furstoptics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	sys := furstoptics.Default()
	if err := render.WritePNG(sys, *output, *width, *height); err != nil {
		log.Fatalf("Failed to render schematic: %v", err)
	}
}
