package geom

// TraceResult accumulates a trace run's output: a layer name maps to its
// ordered sequence of output polygons (each a sequence of Points). It is
// built incrementally by engine.Trace and handed to writer.Write, then
// discarded.
type TraceResult struct {
	ByLayer map[string][][]Point
}

// NewTraceResult returns an empty TraceResult ready for accumulation.
func NewTraceResult() *TraceResult {
	return &TraceResult{ByLayer: make(map[string][][]Point)}
}

// AddLayer inserts polys under name, but only if polys is non-empty — a
// layer with no output polygons is omitted from the result entirely
// (spec.md §4.5: "Layers are inserted ... only if non-empty").
func (r *TraceResult) AddLayer(name string, polys [][]Point) {
	if len(polys) == 0 {
		return
	}
	r.ByLayer[name] = polys
}

// TotalPolygons sums the per-layer output polygon counts.
func (r *TraceResult) TotalPolygons() int {
	total := 0
	for _, polys := range r.ByLayer {
		total += len(polys)
	}
	return total
}
