// Package engine orchestrates a single net-trace run: it builds a
// spatialindex.Index per loaded layer, classifies the rule as Q1/Q2 or Q3,
// runs traversal.BFS accordingly, and for Q3 performs the AA gate cut via
// rectops before assembling a geom.TraceResult.
//
// Q1/Q2 (rule.IsQ3() == false) runs one BFS seeded from rule.Starts[0] and
// copies every visited polygon into the result as-is.
//
// Q3 runs two independent BFS passes — one from Starts[0] to snapshot the
// gate's "high" set on PolyLayer, one from Starts[1] to find the AA
// polygons to be cut — and reconstructs each visited AA polygon's cut
// fragments via cutAAByPoly.
package engine
