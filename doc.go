// Package nettrace is a net tracer for orthogonal (Manhattan)
// integrated-circuit layouts.
//
// Given a multi-layer layout and a rule file specifying seed points,
// inter-layer "via" connectivity, and an optional gate-cutting directive,
// it extracts the set of polygons electrically reachable from the seed(s)
// across layers, optionally performing a geometric split of an "active
// area" (AA) layer governed by a "poly" layer.
//
// Organized under seven subpackages:
//
//	geom/         — orthogonal polygon primitives: bbox overlap,
//	                point-in-polygon, polygon intersection.
//	spatialindex/ — per-layer uniform grid with adaptive cell sizing.
//	rectops/      — polygon-to-rects decomposition, rect-set difference,
//	                rects-to-polygons boundary reconstruction.
//	traversal/    — multi-source, multi-layer BFS with via hops.
//	ruleio/       — rule-file and layout-file loading.
//	engine/       — orchestrates Q1/Q2/Q3 query modes over the above.
//	writer/       — output serialization.
//
//	go get github.com/orthonet/nettrace
package nettrace
