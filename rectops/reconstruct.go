package rectops

import (
	"sort"

	"github.com/orthonet/nettrace/geom"
)

// directedEdge is one directed side of a rectangle's CCW outline.
type directedEdge struct {
	x1, y1, x2, y2 int32
}

func (e directedEdge) reverse() directedEdge {
	return directedEdge{e.x2, e.y2, e.x1, e.y1}
}

// vertexKey packs a vertex's coordinates into a map key.
type vertexKey struct{ x, y int32 }

func (e directedEdge) start() vertexKey { return vertexKey{e.x1, e.y1} }
func (e directedEdge) end() vertexKey   { return vertexKey{e.x2, e.y2} }

// ToPolygons reconstructs boundary polygons from a bag of rectangles via
// directed-edge cancellation and loop tracing:
//
//  1. Each non-degenerate rect contributes four CCW directed edges
//     (bottom L->R, right B->T, top R->L, left T->B).
//  2. Edges are inserted into a signed multiset: inserting e cancels one
//     copy of its exact reverse if present, instead of adding e. For
//     rectangles with disjoint interiors the survivors are the boundary of
//     their union; overlapping rectangles are not merged, and each keeps
//     the parts of its outline that no reverse edge cancelled.
//  3. Survivors are grouped by start vertex and ordered by direction rank
//     (east=0, north=1, west=2, south=3) to make loop tracing
//     deterministic.
//  4. Each loop is traced by following outgoing edges, preferring one that
//     does not immediately backtrack to the edge just traversed. Loops of
//     at least 4 vertices are kept; shorter ones are dropped.
//
// Holes, if produced, appear as independent loops — ToPolygons performs no
// hole/shell classification or linking (spec.md leaves hole polarity an
// open question for downstream consumers).
func ToPolygons(rects []geom.Rect) [][]geom.Point {
	survivors := cancelEdges(rects)
	if len(survivors) == 0 {
		return nil
	}

	adj := make(map[vertexKey][]int, len(survivors))
	for i, e := range survivors {
		adj[e.start()] = append(adj[e.start()], i)
	}
	for k, list := range adj {
		sort.Slice(list, func(i, j int) bool {
			return directionRank(survivors[list[i]]) < directionRank(survivors[list[j]])
		})
		adj[k] = list
	}

	used := make([]bool, len(survivors))
	var polys [][]geom.Point

	for i0, e0 := range survivors {
		if used[i0] {
			continue
		}
		used[i0] = true
		start := e0.start()
		poly := []geom.Point{{X: e0.x1, Y: e0.y1}}
		cur := e0

		for {
			end := cur.end()
			if end == start {
				break
			}
			poly = append(poly, geom.Point{X: end.x, Y: end.y})

			list := adj[end]
			if len(list) == 0 {
				break
			}
			next := list[0]
			for _, candIdx := range list {
				cand := survivors[candIdx]
				// prefer the outgoing edge that does not immediately
				// retrace the edge just traversed
				if !(cand.x2 == cur.x1 && cand.y2 == cur.y1) {
					next = candIdx
					break
				}
			}
			if used[next] {
				break
			}
			used[next] = true
			cur = survivors[next]
		}

		if len(poly) >= 4 {
			polys = append(polys, poly)
		}
	}

	return polys
}

// cancelEdges emits the four CCW directed edges of every non-degenerate
// rect and cancels reverse pairs, returning the surviving edges in a
// deterministic (sorted) order.
func cancelEdges(rects []geom.Rect) []directedEdge {
	counts := make(map[directedEdge]int)
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		for _, e := range []directedEdge{
			{r.X1, r.Y1, r.X2, r.Y1}, // bottom: L -> R
			{r.X2, r.Y1, r.X2, r.Y2}, // right: B -> T
			{r.X2, r.Y2, r.X1, r.Y2}, // top: R -> L
			{r.X1, r.Y2, r.X1, r.Y1}, // left: T -> B
		} {
			addOrCancel(counts, e)
		}
	}

	survivors := make([]directedEdge, 0, len(counts))
	for e, c := range counts {
		for i := 0; i < c; i++ {
			survivors = append(survivors, e)
		}
	}
	sort.Slice(survivors, func(i, j int) bool { return edgeLess(survivors[i], survivors[j]) })
	return survivors
}

// addOrCancel inserts e into counts, cancelling one copy of its reverse if
// present instead of adding e.
func addOrCancel(counts map[directedEdge]int, e directedEdge) {
	r := e.reverse()
	if counts[r] > 0 {
		counts[r]--
		if counts[r] == 0 {
			delete(counts, r)
		}
		return
	}
	counts[e]++
}

func edgeLess(a, b directedEdge) bool {
	if a.x1 != b.x1 {
		return a.x1 < b.x1
	}
	if a.y1 != b.y1 {
		return a.y1 < b.y1
	}
	if a.x2 != b.x2 {
		return a.x2 < b.x2
	}
	return a.y2 < b.y2
}

// directionRank orders outgoing edges east=0, north=1, west=2, south=3 for
// deterministic loop tracing.
func directionRank(e directedEdge) int {
	dx, dy := e.x2-e.x1, e.y2-e.y1
	switch {
	case dy == 0 && dx > 0:
		return 0
	case dx == 0 && dy > 0:
		return 1
	case dy == 0 && dx < 0:
		return 2
	default:
		return 3
	}
}
