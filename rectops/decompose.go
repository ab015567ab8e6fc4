package rectops

import (
	"sort"

	"github.com/orthonet/nettrace/geom"
)

// Decompose turns an orthogonal simple polygon into a disjoint rectangle
// cover of its interior, via a horizontal-slab scan: collect the sorted
// unique vertex y-coordinates, and for each consecutive pair form a slab at
// their midpoint, collecting x-crossings of the polygon's non-horizontal
// edges at that midpoint and pairing them off as interior x-ranges.
//
// Degenerate input (fewer than 2 unique y-coordinates, or a slab/range
// with zero extent) silently contributes no rectangles rather than
// erroring — spec.md permits dropping degenerate polygons here.
//
// Complexity: O(n^2) in the polygon's vertex count (n-1 slabs, each an
// O(n) edge scan); orthogonal IC layout polygons are small enough that
// this dominates neither the traversal's candidate filtering nor the
// AA-cut pipeline.
func Decompose(poly *geom.Polygon) []geom.Rect {
	ys := uniqueSortedY(poly)
	if len(ys) < 2 {
		return nil
	}

	var rects []geom.Rect
	for i := 0; i+1 < len(ys); i++ {
		y0, y1 := ys[i], ys[i+1]
		if y0 == y1 {
			continue
		}
		ymid := y0 + (y1-y0)/2
		xs := xCrossingsAt(poly, ymid)
		for k := 0; k+1 < len(xs); k += 2 {
			x0, x1 := xs[k], xs[k+1]
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			if x0 == x1 {
				continue
			}
			rects = append(rects, geom.Rect{X1: x0, Y1: y0, X2: x1, Y2: y1})
		}
	}
	return rects
}

// uniqueSortedY returns poly's distinct vertex y-coordinates in ascending
// order.
func uniqueSortedY(poly *geom.Polygon) []int32 {
	ys := make([]int32, len(poly.Pts))
	for i, p := range poly.Pts {
		ys[i] = p.Y
	}
	sort.Slice(ys, func(i, j int) bool { return ys[i] < ys[j] })

	out := ys[:0]
	for i, y := range ys {
		if i == 0 || y != out[len(out)-1] {
			out = append(out, y)
		}
	}
	return out
}

// xCrossingsAt returns, sorted ascending, the x-coordinate of every
// non-horizontal edge of poly whose half-open y-range [y1, y2) (after
// endpoint sorting) contains ymid.
func xCrossingsAt(poly *geom.Polygon, ymid int32) []int32 {
	n := len(poly.Pts)
	var xs []int32
	for i := 0; i < n; i++ {
		a, b := poly.Pts[i], poly.Pts[(i+1)%n]
		if a.Y == b.Y {
			continue // horizontal edges never cross a horizontal slab line
		}
		y1, y2 := a.Y, b.Y
		x1, x2 := a.X, b.X
		if y1 > y2 {
			y1, y2 = y2, y1
			x1, x2 = x2, x1
		}
		if ymid < y1 || ymid >= y2 {
			continue
		}
		// vertical edge: x is constant along it
		xs = append(xs, x1)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	return xs
}
