package traversal

import (
	"github.com/orthonet/nettrace/geom"
	"github.com/orthonet/nettrace/spatialindex"
)

// node pairs a layer name with a polygon index within that layer.
type node struct {
	layer string
	idx   int
}

// walker encapsulates mutable BFS state.
type walker struct {
	db      *geom.LayoutDB
	indices map[string]*spatialindex.Index
	adj     *ViaAdjacency
	opts    options
	queue   []node
	res     *Result
	cand    []int
}

// BFS runs a multi-source, multi-layer breadth-first search seeded by
// starts. indices must contain a built spatialindex.Index for every layer
// in db that the BFS might touch (engine builds one per loaded layer up
// front and reuses it across Q1/Q2/Q3's separate BFS calls). adj may be
// nil, equivalent to an empty via adjacency (no cross-layer hops).
//
// A seed whose layer is absent from db is silently skipped (spec.md's
// LookupMiss: a missing layer is an empty layer, never an error).
func BFS(db *geom.LayoutDB, indices map[string]*spatialindex.Index, adj *ViaAdjacency, starts []Seed, opts ...Option) (*Result, error) {
	if db == nil {
		return nil, ErrLayoutNil
	}
	if adj == nil {
		adj = BuildViaAdjacency(nil)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		db:      db,
		indices: indices,
		adj:     adj,
		opts:    o,
		res:     &Result{Visited: make(map[string][]bool)},
		cand:    make([]int, 0, 2048),
	}

	w.seed(starts)
	if err := w.loop(); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// seed marks, for every start point, every polygon on that layer whose
// bbox and exact boundary test both contain the point.
func (w *walker) seed(starts []Seed) {
	for _, st := range starts {
		ld, ok := w.db.Layer(st.Layer)
		if !ok {
			continue
		}
		for i, p := range ld.Polys {
			if !containsPoint(p, st.Pt) {
				continue
			}
			if w.res.visited(st.Layer, i) {
				continue
			}
			w.res.mark(st.Layer, i, len(ld.Polys))
			w.queue = append(w.queue, node{layer: st.Layer, idx: i})
		}
	}
}

// containsPoint reports whether pt lies within p's bbox and, if so, on or
// inside p's boundary.
func containsPoint(p *geom.Polygon, pt geom.Point) bool {
	if pt.X < p.MinX || pt.X > p.MaxX || pt.Y < p.MinY || pt.Y > p.MaxY {
		return false
	}
	return geom.PointInPolyInclusive(pt, p)
}

// loop drains the BFS queue, expanding same-layer and via neighbors for
// each dequeued node, checking ctx cancellation once per dequeue.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.expand(cur)
	}
	return nil
}

// expand pushes the unvisited same-layer and via-neighbor intersections of
// a node that loop has just dequeued.
func (w *walker) expand(cur node) {
	ld, _ := w.db.Layer(cur.layer)
	pu := ld.Polys[cur.idx]

	w.expandInto(pu, cur.layer, ld.Polys, func(v int) bool { return v != cur.idx })

	for _, nb := range w.adj.Neighbors(cur.layer) {
		nbLD, ok := w.db.Layer(nb)
		if !ok {
			continue
		}
		w.expandInto(pu, nb, nbLD.Polys, func(int) bool { return true })
	}
}

// expandInto queries layer's spatial index for candidates touching pu's
// bbox, dedups them, and for every candidate accepted by keep that isn't
// already visited and whose polygon truly intersects pu, marks it visited
// and enqueues it.
func (w *walker) expandInto(pu *geom.Polygon, layer string, polys []*geom.Polygon, keep func(int) bool) {
	idx, ok := w.indices[layer]
	if !ok {
		return
	}
	w.cand = w.cand[:0]
	w.cand = idx.QueryCandidates(pu, w.cand)
	w.cand = spatialindex.DedupSorted(w.cand)

	for _, v := range w.cand {
		if !keep(v) || w.res.visited(layer, v) {
			continue
		}
		if geom.PolyIntersect(pu, polys[v]) {
			w.res.mark(layer, v, len(polys))
			w.queue = append(w.queue, node{layer: layer, idx: v})
		}
	}
}
