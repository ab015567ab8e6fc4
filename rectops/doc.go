// Package rectops decomposes orthogonal polygons into axis-aligned
// rectangles, computes rectangle-set difference, and reconstructs boundary
// polygons from a rectangle bag via directed-edge cancellation and loop
// tracing. It is the engine behind the AA-cut pipeline in package engine.
//
// What
//
//   - Decompose: polygon -> disjoint rectangle cover (horizontal-slab scan).
//   - Difference: A \ B, exact rectangle-level subtraction, non-degenerate
//     output, rectangles may overlap across different A inputs.
//   - ToPolygons: rectangle bag -> boundary polygons. A directed edge is
//     cancelled only by its exact reverse, so an edge shared exactly by two
//     adjacent rectangles disappears from the output. Overlapping
//     rectangles are not merged: where engine's AA-cut passes a rectangle
//     that lies inside another, both outlines survive as separate loops.
//
// Why
//
//   - Manhattan polygon Boolean algebra (difference, re-intersection) is
//     far simpler to get exactly right at the rectangle level than via a
//     general polygon-clipping algorithm, and spec.md scopes out general
//     polygon Boolean algebra entirely.
//
// Determinism
//
//	ToPolygons orders directed edges by a fixed direction rank
//	(east=0, north=1, west=2, south=3) at every vertex, and loop tracing
//	prefers the edge that does not immediately backtrack. Holes, if
//	produced, surface as separate loops; no hole/shell classification or
//	linking is performed (spec.md's open question on hole polarity).
package rectops
