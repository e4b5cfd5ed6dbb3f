// Package geometry derives numbers and shapes from resolved boards: named
// properties for `{id.prop}` references, the cut polygon, face dimensions for
// list views and the six orthographic projections used by renderers.
//
// Rotated boards (from/to placement) report right, top, cx and cy from their
// axis-aligned bounding box, so references keep working whatever the angle.
package geometry
