// Package geometry computes the scattering angle subtended by a glass cell as
// seen from the sample, and the width that angle illuminates on a detector
// further down the beam axis.
//
// # Coordinates
//
// The sample sits at the origin and the beam runs along +X. All lengths are
// in millimetres and all angles in radians. The layout is mirrored about the
// beam axis, so widths are full widths and heights in the schematic are
// half-widths.
//
// # Numeric Behavior
//
// The functions in this package never panic and never return errors.
// Degenerate inputs (a cell whose downstream face sits exactly on the sample,
// a zero-width cell) propagate as IEEE infinities or NaNs so callers can
// decide how to present them:
//
//	inst := geometry.Default()
//	inst.ScatteringAngle(-40)    // +Inf: the cell face is at the sample
//	inst.Coverage(-40, 800) // NaN
package geometry
