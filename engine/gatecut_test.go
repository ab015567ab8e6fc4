package engine

import (
	"testing"

	"github.com/orthonet/nettrace/geom"
)

func TestCutAAByPoly_NoCandidates(t *testing.T) {
	aa := mustPoly(t, rectPts(0, 0, 100, 10))
	out := cutAAByPoly(aa, nil, nil)
	if len(out) != 1 || len(out[0]) != 4 {
		t.Fatalf("expected the AA rect unchanged as a single quad, got %+v", out)
	}
}

func TestCutAAByPoly_LowSplitsAA(t *testing.T) {
	aa := mustPoly(t, rectPts(0, 0, 100, 10))
	low := mustPoly(t, rectPts(40, -5, 60, 15))
	out := cutAAByPoly(aa, nil, []*geom.Polygon{low})

	if len(out) != 2 {
		t.Fatalf("expected AA split into two pieces either side of the low poly, got %d: %+v", len(out), out)
	}
}

func TestRectIntersect(t *testing.T) {
	a := geom.Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}
	b := geom.Rect{X1: 5, Y1: 5, X2: 15, Y2: 15}
	r, ok := rectIntersect(a, b)
	if !ok || r != (geom.Rect{X1: 5, Y1: 5, X2: 10, Y2: 10}) {
		t.Fatalf("unexpected intersection: %+v ok=%v", r, ok)
	}

	c := geom.Rect{X1: 20, Y1: 20, X2: 30, Y2: 30}
	if _, ok := rectIntersect(a, c); ok {
		t.Fatal("disjoint rects must not report an intersection")
	}
}
