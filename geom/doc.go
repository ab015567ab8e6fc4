// Package geom defines the central Point, Polygon, Rect, LayerData, and
// LayoutDB types shared by every other package in this module, and provides
// the orthogonal-geometry predicates (GeomOrtho) that operate on them:
// PointInPolyInclusive and PolyIntersect.
//
// All coordinates are int32; intermediate products that could overflow
// int32 (cross products, ray-cast comparisons) are promoted to int64. There
// is no floating point anywhere in this package, so predicates are exact
// and reproducible across platforms.
//
// Polygon identity within a LayerData is its slice index — stable for the
// run's lifetime — and is the only handle the spatial index and traversal
// packages use; Polygon values themselves are never mutated after
// construction.
//
// Why
//
//   - A single shared vocabulary (Point/Polygon/Rect/LayoutDB) lets
//     spatialindex, rectops, traversal, and engine avoid any per-package
//     geometry type of their own.
//   - Bounding boxes are cached at construction so every downstream
//     consumer (spatial index cell assignment, BFS candidate filtering)
//     gets O(1) bbox access instead of re-scanning vertices.
//
// Errors
//
//   - ErrTooFewVertices – a polygon was built from fewer than 4 points.
package geom
