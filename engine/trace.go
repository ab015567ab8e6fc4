package engine

import (
	"sync"

	"github.com/orthonet/nettrace/geom"
	"github.com/orthonet/nettrace/ruleio"
	"github.com/orthonet/nettrace/spatialindex"
	"github.com/orthonet/nettrace/traversal"
)

// Trace runs one net-trace query against db per rule, returning the
// assembled output. rule.IsQ3() selects the two-seed gate-cut shape;
// otherwise a single BFS seeded by rule.Starts[0] is run (spec.md §4.5:
// the Q1/Q2 distinction is immaterial to the engine).
func Trace(rule *ruleio.RuleFile, db *geom.LayoutDB, opts ...Option) (*geom.TraceResult, error) {
	if rule == nil {
		return nil, ErrRuleNil
	}
	if db == nil {
		return nil, ErrLayoutNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	indices := buildLayerIndices(db, o.workers)
	adj := buildViaAdjacency(rule)

	if rule.IsQ3() {
		return traceQ3(rule, db, indices, adj, o)
	}
	return traceQ1Q2(rule, db, indices, adj, o)
}

func buildViaAdjacency(rule *ruleio.RuleFile) *traversal.ViaAdjacency {
	chains := make([][]string, 0, len(rule.ViaRules))
	for _, vr := range rule.ViaRules {
		chains = append(chains, vr.Layers)
	}
	return traversal.BuildViaAdjacency(chains)
}

func traceQ1Q2(rule *ruleio.RuleFile, db *geom.LayoutDB, indices map[string]*spatialindex.Index, adj *traversal.ViaAdjacency, o options) (*geom.TraceResult, error) {
	seed := traversal.Seed{Layer: rule.Starts[0].Layer, Pt: rule.Starts[0].Pt}
	res, err := traversal.BFS(db, indices, adj, []traversal.Seed{seed}, traversal.WithContext(o.ctx))
	if err != nil {
		return nil, err
	}

	out := geom.NewTraceResult()
	for layer, polys := range emitVisited(db, res, "") {
		out.AddLayer(layer, polys)
	}
	return out, nil
}

func traceQ3(rule *ruleio.RuleFile, db *geom.LayoutDB, indices map[string]*spatialindex.Index, adj *traversal.ViaAdjacency, o options) (*geom.TraceResult, error) {
	gate := rule.Gate

	seed1 := traversal.Seed{Layer: rule.Starts[0].Layer, Pt: rule.Starts[0].Pt}
	vis1, err := traversal.BFS(db, indices, adj, []traversal.Seed{seed1}, traversal.WithContext(o.ctx))
	if err != nil {
		return nil, err
	}
	polyHigh := vis1.Visited[gate.PolyLayer]

	seed2 := traversal.Seed{Layer: rule.Starts[1].Layer, Pt: rule.Starts[1].Pt}
	vis2, err := traversal.BFS(db, indices, adj, []traversal.Seed{seed2}, traversal.WithContext(o.ctx))
	if err != nil {
		return nil, err
	}

	out := geom.NewTraceResult()
	for layer, polys := range emitVisited(db, vis2, gate.AALayer) {
		out.AddLayer(layer, polys)
	}

	aaPolys := cutAllAA(db, indices, vis2, polyHigh, gate, o.workers)
	out.AddLayer(gate.AALayer, aaPolys)

	return out, nil
}

// emitVisited converts a BFS Result into per-layer vertex lists, skipping
// skipLayer (used to exclude the AA layer from Q3's non-AA emission pass).
func emitVisited(db *geom.LayoutDB, res *traversal.Result, skipLayer string) map[string][][]geom.Point {
	out := make(map[string][][]geom.Point, len(res.Visited))
	for layer, bm := range res.Visited {
		if layer == skipLayer {
			continue
		}
		ld, ok := db.Layer(layer)
		if !ok {
			continue
		}
		var polys [][]geom.Point
		for i, v := range bm {
			if v {
				polys = append(polys, append([]geom.Point(nil), ld.Polys[i].Pts...))
			}
		}
		if len(polys) > 0 {
			out[layer] = polys
		}
	}
	return out
}

// cutAllAA runs cutAAByPoly for every AA polygon visited in vis2, optionally
// in parallel (spec.md §5: "AA-cut computations for distinct AA polygons
// are embarrassingly parallel"). Output order across AA polygons is
// unspecified; within one polygon's cut, ToPolygons's own loop order is
// preserved.
func cutAllAA(db *geom.LayoutDB, indices map[string]*spatialindex.Index, vis2 *traversal.Result, polyHigh []bool, gate ruleio.GateRule, workers int) [][]geom.Point {
	aaLD, ok := db.Layer(gate.AALayer)
	if !ok {
		return nil
	}
	polyLD, ok := db.Layer(gate.PolyLayer)
	if !ok {
		return nil
	}
	polyIdx, ok := indices[gate.PolyLayer]
	if !ok {
		return nil
	}

	aaBM := vis2.Visited[gate.AALayer]
	var aaIndices []int
	for i, v := range aaBM {
		if v {
			aaIndices = append(aaIndices, i)
		}
	}

	cutOne := func(i int) [][]geom.Point {
		aa := aaLD.Polys[i]
		high, low := partitionGateCandidates(aa, polyLD.Polys, polyIdx, polyHigh)
		return cutAAByPoly(aa, high, low)
	}

	if workers <= 1 || len(aaIndices) <= 1 {
		var out [][]geom.Point
		for _, i := range aaIndices {
			out = append(out, cutOne(i)...)
		}
		return out
	}

	results := make([][][]geom.Point, len(aaIndices))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for k, i := range aaIndices {
		k, i := k, i
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[k] = cutOne(i)
		}()
	}
	wg.Wait()

	var out [][]geom.Point
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// partitionGateCandidates queries polyIdx for candidates touching aa's
// bbox, deduplicates, keeps the ones that truly intersect aa, and
// partitions them into high (visited in the first BFS pass) and low
// (everything else that intersects).
func partitionGateCandidates(aa *geom.Polygon, polyPolys []*geom.Polygon, polyIdx *spatialindex.Index, polyHigh []bool) (high, low []*geom.Polygon) {
	cand := polyIdx.QueryCandidates(aa, nil)
	cand = spatialindex.DedupSorted(cand)

	for _, i := range cand {
		p := polyPolys[i]
		if !geom.PolyIntersect(aa, p) {
			continue
		}
		if i < len(polyHigh) && polyHigh[i] {
			high = append(high, p)
		} else {
			low = append(low, p)
		}
	}
	return high, low
}
