package engine

import "context"

// Option configures a Trace run via functional arguments.
type Option func(*options)

type options struct {
	ctx     context.Context
	workers int
}

func defaultOptions() options {
	return options{ctx: context.Background(), workers: 1}
}

// WithContext sets a context.Context passed through to every traversal.BFS
// call, checked once per dequeue.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers sets the worker count used to parallelize per-layer index
// builds and per-AA-polygon gate cuts (spec.md §5: the core is otherwise
// single-threaded; these two stages are the ones it calls out as
// embarrassingly parallel). n<1 is treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}
