// Package geom provides the small geometric vocabulary shared by the
// FURST optical model: 2D vectors for aperture and detector-plane math,
// and rigid 3D transforms used to place optical surfaces in instrument
// coordinates.
//
// # Coordinate System
//
// Instrument coordinates are right-handed with the optic axis along +Z:
//   - Z increases from the grating toward the entrance aperture
//   - X is the dispersion direction
//   - Y is the cross-dispersion (spatial) direction
//   - Angles are in radians
//   - Lengths are in millimeters
//
// # Rowland Placement
//
// Components of a Rowland-circle spectrograph sit on a circle of radius R
// in the X-Z plane, centered at the origin. A component at azimuth a is
// placed by translating to (0, 0, R) and rotating about Y by a, which puts
// it at (R·sin a, 0, R·cos a) facing the circle's center. See
// [RowlandTransform].
//
// 3D vector algebra is delegated to gonum's spatial/r3 package; geom only
// adds the affine composition that r3 does not provide.
package geom
