package engine

import (
	"github.com/orthonet/nettrace/geom"
	"github.com/orthonet/nettrace/rectops"
)

// cutAAByPoly implements spec.md §4.5's CutAAByPoly: aa is decomposed into
// rects, "low" poly coverage is subtracted from it, and the overlap between
// aa and "high" poly coverage is re-added as separate rects before boundary
// reconstruction. The final rectangle bag deliberately mixes aaCut (A\B)
// with aaOn (A∩high) without merging — ToPolygons's edge cancellation is
// what reconciles the shared boundary between them.
func cutAAByPoly(aa *geom.Polygon, highPolys, lowPolys []*geom.Polygon) [][]geom.Point {
	aaRects := rectops.Decompose(aa)

	var lowRects []geom.Rect
	for _, p := range lowPolys {
		lowRects = append(lowRects, rectops.Decompose(p)...)
	}
	var highRects []geom.Rect
	for _, p := range highPolys {
		highRects = append(highRects, rectops.Decompose(p)...)
	}

	aaCut := rectops.Difference(aaRects, lowRects)

	var aaOn []geom.Rect
	for _, ar := range aaRects {
		for _, hr := range highRects {
			if ov, ok := rectIntersect(ar, hr); ok {
				aaOn = append(aaOn, ov)
			}
		}
	}

	final := make([]geom.Rect, 0, len(aaCut)+len(aaOn))
	final = append(final, aaCut...)
	final = append(final, aaOn...)

	return rectops.ToPolygons(final)
}

// rectIntersect returns the overlap rectangle of a and b, if non-degenerate.
func rectIntersect(a, b geom.Rect) (geom.Rect, bool) {
	r := geom.Rect{
		X1: maxI32(a.X1, b.X1),
		Y1: maxI32(a.Y1, b.Y1),
		X2: minI32(a.X2, b.X2),
		Y2: minI32(a.Y2, b.Y2),
	}
	if r.Empty() {
		return geom.Rect{}, false
	}
	return r, true
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
