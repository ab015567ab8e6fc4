package spatialindex

import (
	"sort"

	"github.com/orthonet/nettrace/geom"
)

// Index maps a grid cell to the set of polygon indices (within one layer)
// whose bounding box touches that cell. Index is read-only once New
// returns.
type Index struct {
	cell int32
	grid map[cellKey][]int
}

// AutoCellSize samples up to sampleCap polygons at an even stride,
// computes each sample's max(width,1) and max(height,1), takes the median
// of each, and returns max(minCellSize, median(width,height)*4). Returns
// defaultCellSize for an empty input.
func AutoCellSize(polys []*geom.Polygon) int32 {
	n := len(polys)
	if n == 0 {
		return defaultCellSize
	}

	step := n / sampleCap
	if step < 1 {
		step = 1
	}

	var widths, heights []int32
	for i, cnt := 0, 0; i < n && cnt < sampleCap; i, cnt = i+step, cnt+1 {
		p := polys[i]
		w := p.MaxX - p.MinX
		if w < 1 {
			w = 1
		}
		h := p.MaxY - p.MinY
		if h < 1 {
			h = 1
		}
		widths = append(widths, w)
		heights = append(heights, h)
	}

	medW := medianInPlace(widths)
	medH := medianInPlace(heights)
	med := medW
	if medH > med {
		med = medH
	}

	cs := med * 4
	if cs < minCellSize {
		cs = minCellSize
	}
	return cs
}

// medianInPlace sorts vs and returns its upper median. vs is always
// non-empty when called from AutoCellSize.
func medianInPlace(vs []int32) int32 {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs[len(vs)/2]
}

// New builds an Index over polys using the given cell edge length. cell
// must be positive; callers typically pass AutoCellSize(polys).
func New(polys []*geom.Polygon, cell int32) *Index {
	if cell <= 0 {
		cell = defaultCellSize
	}
	idx := &Index{cell: cell, grid: make(map[cellKey][]int, len(polys))}
	for i, p := range polys {
		gx0, gy0, gx1, gy1 := cellsForBBox(p, cell)
		for gx := gx0; gx <= gx1; gx++ {
			for gy := gy0; gy <= gy1; gy++ {
				k := cellKey{gx, gy}
				idx.grid[k] = append(idx.grid[k], i)
			}
		}
	}
	return idx
}

// QueryCandidates appends to out every polygon index present in any cell q's
// bounding box touches, and returns the extended slice. The result may
// contain duplicates, including q's own index if it is itself indexed;
// callers are expected to sort and dedup (traversal does this before
// running PolyIntersect against each candidate).
//
// Guarantee: every polygon whose bbox overlaps q's bbox appears at least
// once in the returned slice.
func (idx *Index) QueryCandidates(q *geom.Polygon, out []int) []int {
	gx0, gy0, gx1, gy1 := cellsForBBox(q, idx.cell)
	for gx := gx0; gx <= gx1; gx++ {
		for gy := gy0; gy <= gy1; gy++ {
			out = append(out, idx.grid[cellKey{gx, gy}]...)
		}
	}
	return out
}

// cellsForBBox returns the inclusive grid-cell rectangle [gx0..gx1] x
// [gy0..gy1] that p's bounding box touches, using true floor division so
// negative coordinates route to the same cell in Build and Query alike.
func cellsForBBox(p *geom.Polygon, cell int32) (gx0, gy0, gx1, gy1 int32) {
	return floorDiv(p.MinX, cell), floorDiv(p.MinY, cell), floorDiv(p.MaxX, cell), floorDiv(p.MaxY, cell)
}

// floorDiv computes the mathematical floor of a/b for a positive divisor
// b, unlike Go's native truncating integer division.
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DedupSorted sorts cand ascending and removes duplicates in place,
// returning the deduplicated prefix. Shared by traversal and engine, both
// of which must deduplicate QueryCandidates output before testing
// PolyIntersect against each candidate (spec.md §4.4).
func DedupSorted(cand []int) []int {
	sort.Ints(cand)
	out := cand[:0]
	for i, v := range cand {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
