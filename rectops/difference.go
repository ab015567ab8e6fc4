package rectops

import "github.com/orthonet/nettrace/geom"

// Difference computes A \ B at the rectangle level: every point covered by
// some rect of A and no rect of B survives, every point covered by some
// rect of B is removed. The result is not merged — rectangles from
// different originating A pieces may still overlap where A's own inputs
// overlapped — but within the pieces produced from a single input
// rectangle they do not, and all output rectangles are non-degenerate.
func Difference(a, b []geom.Rect) []geom.Rect {
	cur := append([]geom.Rect(nil), a...)
	for _, bi := range b {
		var next []geom.Rect
		for _, ai := range cur {
			next = append(next, subtractOne(ai, bi)...)
		}
		cur = next
		if len(cur) == 0 {
			break
		}
	}

	out := cur[:0]
	for _, r := range cur {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}

// subtractOne returns the pieces of a remaining after removing its overlap
// with b, in the fixed order top/bottom/left/right, omitting any piece
// that would be degenerate. If a and b do not overlap, a is returned
// unchanged.
func subtractOne(a, b geom.Rect) []geom.Rect {
	if !rectOverlap(a, b) {
		return []geom.Rect{a}
	}
	ix1, iy1 := maxI32(a.X1, b.X1), maxI32(a.Y1, b.Y1)
	ix2, iy2 := minI32(a.X2, b.X2), minI32(a.Y2, b.Y2)
	if ix1 >= ix2 || iy1 >= iy2 {
		return []geom.Rect{a}
	}

	var out []geom.Rect
	if top := (geom.Rect{X1: a.X1, Y1: iy2, X2: a.X2, Y2: a.Y2}); !top.Empty() {
		out = append(out, top)
	}
	if bottom := (geom.Rect{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: iy1}); !bottom.Empty() {
		out = append(out, bottom)
	}
	if left := (geom.Rect{X1: a.X1, Y1: iy1, X2: ix1, Y2: iy2}); !left.Empty() {
		out = append(out, left)
	}
	if right := (geom.Rect{X1: ix2, Y1: iy1, X2: a.X2, Y2: iy2}); !right.Empty() {
		out = append(out, right)
	}
	return out
}

func rectOverlap(a, b geom.Rect) bool {
	return !(a.X2 <= b.X1 || b.X2 <= a.X1 || a.Y2 <= b.Y1 || b.Y2 <= a.Y1)
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
