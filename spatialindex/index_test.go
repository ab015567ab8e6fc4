package spatialindex

import (
	"testing"

	"github.com/orthonet/nettrace/geom"
)

func square(t *testing.T, x0, y0, x1, y1 int32) *geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon([]geom.Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestAutoCellSize_Empty(t *testing.T) {
	if got := AutoCellSize(nil); got != defaultCellSize {
		t.Fatalf("AutoCellSize(nil) = %d; want %d", got, defaultCellSize)
	}
}

func TestAutoCellSize_Floor(t *testing.T) {
	polys := []*geom.Polygon{square(t, 0, 0, 1, 1)}
	if got := AutoCellSize(polys); got != minCellSize {
		t.Fatalf("tiny polygons: AutoCellSize = %d; want floor %d", got, minCellSize)
	}
}

// TestQueryCandidates_Completeness covers quantified property 5: every
// pair on the same layer with overlapping bboxes must surface in
// QueryCandidates.
func TestQueryCandidates_Completeness(t *testing.T) {
	polys := []*geom.Polygon{
		square(t, 0, 0, 10, 10),
		square(t, 10, 0, 20, 10),   // touches poly 0
		square(t, 500, 500, 510, 510), // far away
	}
	idx := New(polys, 64)

	cand := idx.QueryCandidates(polys[0], nil)
	cand = DedupSorted(cand)

	found := map[int]bool{}
	for _, c := range cand {
		found[c] = true
	}
	if !found[0] {
		t.Error("query polygon's own index must appear")
	}
	if !found[1] {
		t.Error("touching polygon must appear in candidates")
	}
}

func TestQueryCandidates_NegativeCoordinates(t *testing.T) {
	polys := []*geom.Polygon{
		square(t, -100, -100, -90, -90),
		square(t, -90, -100, -80, -90), // touches poly 0 across x=-90
	}
	idx := New(polys, 32)

	cand := DedupSorted(idx.QueryCandidates(polys[0], nil))
	found := map[int]bool{}
	for _, c := range cand {
		found[c] = true
	}
	if !found[1] {
		t.Error("negative-coordinate neighbor must still surface as a candidate")
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int32 }{
		{7, 4, 1},
		{-1, 4, -1},
		{-4, 4, -1},
		{-5, 4, -2},
		{0, 4, 0},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d,%d) = %d; want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDedupSorted(t *testing.T) {
	got := DedupSorted([]int{3, 1, 1, 2, 3, 3})
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v; want %v", got, want)
		}
	}
}
