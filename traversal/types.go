package traversal

import (
	"context"
	"errors"

	"github.com/orthonet/nettrace/geom"
)

// ErrLayoutNil is returned when BFS is called with a nil LayoutDB.
var ErrLayoutNil = errors.New("traversal: layout is nil")

// Seed pairs a layer name with a point to seed a BFS from.
type Seed struct {
	Layer string
	Pt    geom.Point
}

// Option configures a BFS run via functional arguments.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a context.Context checked for cancellation once per
// dequeue; the core traversal algorithm has no cancellation points of its
// own (spec.md §5), this is a purely cooperative hook mirrored from the
// teacher's bfs.WithContext.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result holds the outcome of a BFS run: per-layer visited bitmaps, sized
// to each loaded layer's polygon count. A layer absent from Result was
// never visited at all (equivalent to an all-false bitmap).
type Result struct {
	Visited map[string][]bool
}

// visited reports whether (layer, idx) has been marked, treating an
// unloaded layer as entirely unvisited.
func (r *Result) visited(layer string, idx int) bool {
	bm, ok := r.Visited[layer]
	return ok && idx < len(bm) && bm[idx]
}

// mark sets (layer, idx) visited, lazily allocating the layer's bitmap at
// size n the first time it is touched.
func (r *Result) mark(layer string, idx, n int) {
	bm, ok := r.Visited[layer]
	if !ok {
		bm = make([]bool, n)
		r.Visited[layer] = bm
	}
	bm[idx] = true
}
