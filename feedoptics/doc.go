// Package feedoptics models the FURST feed optics.
//
// The feed optics are tall narrow cylinders which are analogs of the slit
// used in a traditional spectrograph. They provide the demagnification
// needed to fit the entire Sun onto one pixel of the detector, and they
// place the virtual image of the Sun on the Rowland circle.
package feedoptics
