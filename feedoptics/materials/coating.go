// Package materials holds the coating prescriptions for the FURST feed
// optics.
package materials

import "github.com/sun-data/furstoptics/optic"

// CoatingDesign returns the as-designed coating for the FURST feed
// optics: a MgF2-protected aluminum stack on a fused-silica substrate,
// reflective across the vacuum-ultraviolet science band.
func CoatingDesign() optic.MultilayerMirror {
	return optic.MultilayerMirror{
		Layers: []optic.Layer{
			{Chemical: "MgF2", Thickness: 25},
			{Chemical: "Al", Thickness: 50},
		},
		Substrate: optic.Layer{Chemical: "SiO2", Thickness: 3e6}, // 3 mm
	}
}
