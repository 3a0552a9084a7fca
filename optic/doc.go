// Package optic provides the optical-surface primitives the FURST model is
// assembled from: sag profiles, clear and mechanical apertures, diffraction
// rulings, coating materials, and the Surface type that ties them together.
//
// # Conventions
//
//   - Lengths are in millimeters, angles in radians.
//   - Coating layer thicknesses are in nanometers.
//   - Groove densities are in grooves per millimeter.
//   - A surface lives in its local frame with the vertex at the origin and
//     the sag measured along +Z; Surface.Transform places it in instrument
//     coordinates.
//   - Curvature radii are positive; the center of curvature of a sag lies
//     on the local +Z axis. Concave-facing placement is expressed through
//     the surface transform, never through a negative radius.
//
// # Validation
//
// Every primitive validates fail-fast: Surface.Validate walks all non-nil
// parts and reports the first violation, wrapped with the surface name and
// one of the package's sentinel errors. Invalid values always indicate a
// misconfigured model and are never retried.
package optic
