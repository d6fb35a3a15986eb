// Package geom provides the 2D affine transform used to place shapes on a
// drawing surface.
//
// An Affine is built by chaining operations. Each operation is applied after
// the ones before it, so
//
//	geom.Identity().RotateDeg(45).Scale(sx, sy).Translate(mx, my)
//
// first rotates a point, then scales it, then translates it. Then composes two
// transforms in the same left-to-right order.
package geom
