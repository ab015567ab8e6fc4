// Package spatialindex provides a uniform-grid spatial index over a single
// layer's polygons, with an adaptive cell-size heuristic chosen from the
// layer's own polygon size statistics.
//
// What
//
//   - AutoCellSize samples a layer's polygons and picks a cell edge length
//     that keeps typical polygons touching only a handful of cells while
//     still pruning candidate lists effectively.
//   - New builds an Index, mapping every polygon index to every grid cell
//     its bounding box touches.
//   - Index.QueryCandidates appends every polygon index present in any cell
//     a query polygon's bounding box touches; callers deduplicate.
//
// Why
//
//   - traversal.BFS calls QueryCandidates once per dequeued polygon, per
//     same-layer and per via-neighbor expansion; a flat O(n) scan of every
//     polygon in a layer would make BFS quadratic on large layouts.
//
// Determinism
//
//	Indices within a cell are appended in polygon order (construction is a
//	single deterministic pass); negative coordinates use a true
//	mathematical floor division, applied identically in Build and Query, so
//	a polygon straddling coordinate zero always lands in the same cells it
//	would query into.
//
// Complexity (n = polygon count, k = avg cells touched per polygon)
//
//   - Build: O(n*k)
//   - QueryCandidates: O(k) plus the size of the returned candidate list
package spatialindex
