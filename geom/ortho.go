package geom

// PointInPolyInclusive reports whether pt lies inside poly or exactly on
// its boundary. It first checks every edge for exact colinearity
// (boundary membership), then falls back to a half-open ray-cast parity
// count toward +x. All arithmetic is exact 64-bit integer; there is no
// tolerance parameter.
//
// Complexity: O(n) in the polygon's vertex count.
func PointInPolyInclusive(pt Point, poly *Polygon) bool {
	n := len(poly.Pts)
	for i := 0; i < n; i++ {
		if onSegment(pt, poly.Pts[i], poly.Pts[(i+1)%n]) {
			return true
		}
	}

	inside := false
	x, y := int64(pt.X), int64(pt.Y)
	for i := 0; i < n; i++ {
		x1, y1 := int64(poly.Pts[i].X), int64(poly.Pts[i].Y)
		x2, y2 := int64(poly.Pts[(i+1)%n].X), int64(poly.Pts[(i+1)%n].Y)
		if y1 > y2 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
		}
		// edge half-open in y: (y1, y2]
		if y <= y1 || y > y2 {
			continue
		}
		dy := y2 - y1
		if dy == 0 {
			continue
		}
		left := x1*dy + (x2-x1)*(y-y1)
		right := x * dy
		if left >= right {
			inside = !inside
		}
	}

	return inside
}

// onSegment reports whether p lies exactly on the closed segment a-b,
// using an exact cross-product colinearity test plus coordinate-range
// containment.
func onSegment(p, a, b Point) bool {
	x, y := int64(p.X), int64(p.Y)
	x1, y1 := int64(a.X), int64(a.Y)
	x2, y2 := int64(b.X), int64(b.Y)
	if (x2-x1)*(y-y1) != (y2-y1)*(x-x1) {
		return false
	}
	return minI64(x1, x2) <= x && x <= maxI64(x1, x2) &&
		minI64(y1, y2) <= y && y <= maxI64(y1, y2)
}

// PolyIntersect reports whether a and b share any point: a boundary
// crossing, a collinear overlapping edge, or full nesting of one inside
// the other. Bounding-box disjointness is checked first as a cheap
// rejection.
//
// Complexity: O(na*nb) in the worst case (every edge pair tested).
func PolyIntersect(a, b *Polygon) bool {
	if !BBoxOverlap(a, b) {
		return false
	}

	na, nb := len(a.Pts), len(b.Pts)
	for i := 0; i < na; i++ {
		a1, a2 := a.Pts[i], a.Pts[(i+1)%na]
		for j := 0; j < nb; j++ {
			b1, b2 := b.Pts[j], b.Pts[(j+1)%nb]
			if segIntersectManhattan(a1, a2, b1, b2) {
				return true
			}
		}
	}

	// No edge crossing: check for full containment (nesting) via an
	// arbitrary vertex of each polygon.
	if PointInPolyInclusive(a.Pts[0], b) {
		return true
	}
	if PointInPolyInclusive(b.Pts[0], a) {
		return true
	}

	return false
}

// segIntersectManhattan tests two axis-aligned segments for intersection.
// Vertical-vs-horizontal reduces to a containment test; parallel-collinear
// segments reduce to a 1-D range overlap. A bounding-box fallback handles
// any non-orthogonal input defensively (should not arise for well-formed
// orthogonal polygons).
func segIntersectManhattan(a1, a2, b1, b2 Point) bool {
	aV, aH := a1.X == a2.X, a1.Y == a2.Y
	bV, bH := b1.X == b2.X, b1.Y == b2.Y

	if (aV || aH) && (bV || bH) {
		switch {
		case aV && bH:
			ax, by := int64(a1.X), int64(b1.Y)
			bMinX, bMaxX := minI64(int64(b1.X), int64(b2.X)), maxI64(int64(b1.X), int64(b2.X))
			aMinY, aMaxY := minI64(int64(a1.Y), int64(a2.Y)), maxI64(int64(a1.Y), int64(a2.Y))
			return bMinX <= ax && ax <= bMaxX && aMinY <= by && by <= aMaxY
		case aH && bV:
			return segIntersectManhattan(b1, b2, a1, a2)
		case aV && bV:
			if a1.X != b1.X {
				return false
			}
			a0, a1y := minI64(int64(a1.Y), int64(a2.Y)), maxI64(int64(a1.Y), int64(a2.Y))
			b0, b1y := minI64(int64(b1.Y), int64(b2.Y)), maxI64(int64(b1.Y), int64(b2.Y))
			return !(a1y < b0 || b1y < a0)
		case aH && bH:
			if a1.Y != b1.Y {
				return false
			}
			a0, a1x := minI64(int64(a1.X), int64(a2.X)), maxI64(int64(a1.X), int64(a2.X))
			b0, b1x := minI64(int64(b1.X), int64(b2.X)), maxI64(int64(b1.X), int64(b2.X))
			return !(a1x < b0 || b1x < a0)
		}
	}

	// Defensive fallback for non-orthogonal edges: bounding-box overlap.
	aMinX, aMaxX := minI64(int64(a1.X), int64(a2.X)), maxI64(int64(a1.X), int64(a2.X))
	aMinY, aMaxY := minI64(int64(a1.Y), int64(a2.Y)), maxI64(int64(a1.Y), int64(a2.Y))
	bMinX, bMaxX := minI64(int64(b1.X), int64(b2.X)), maxI64(int64(b1.X), int64(b2.X))
	bMinY, bMaxY := minI64(int64(b1.Y), int64(b2.Y)), maxI64(int64(b1.Y), int64(b2.Y))
	return !(aMaxX < bMinX || bMaxX < aMinX || aMaxY < bMinY || bMaxY < aMinY)
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
