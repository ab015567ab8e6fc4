// Package traversal runs a multi-source, multi-layer breadth-first search
// over polygons from a geom.LayoutDB, where edges are same-layer polygon
// intersection and cross-layer "via" adjacency, producing one visited
// bitmap per layer.
//
// What
//
//   - Node identity is (layer name, polygon index).
//   - Seeding marks every polygon on a seed's layer whose bounding box and
//     exact boundary-inclusive test both contain the seed point; a single
//     point may seed several overlapping polygons.
//   - Each dequeued polygon expands same-layer (via the layer's own
//     spatialindex.Index) and, for every adjacent layer named in the
//     ViaAdjacency, cross-layer into that layer's index.
//   - Visited bitmaps are monotone: once set, never cleared, within one
//     BFS call.
//
// Why
//
//   - A "net" is exactly this reachable set; engine runs one BFS per query
//     seed and assembles its output from the resulting bitmaps.
//
// Determinism
//
//	ViaAdjacency neighbors are iterated in the insertion order the rule
//	file's Via section defined them; same-layer and via candidate lists are
//	sorted and deduplicated (spatialindex.DedupSorted) before being tested,
//	so a given LayoutDB+RuleFile always visits polygons in the same order.
//
// Complexity (n = total polygon count across needed layers)
//
//	O(n*k) where k is the average candidate-list size returned by the
//	spatial index per dequeue — see package spatialindex.
package traversal
