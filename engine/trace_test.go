package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orthonet/nettrace/geom"
	"github.com/orthonet/nettrace/ruleio"
)

func rectPts(x1, y1, x2, y2 int32) []geom.Point {
	return []geom.Point{{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2}}
}

func mustPoly(t *testing.T, pts []geom.Point) *geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon(pts)
	require.NoError(t, err)
	return p
}

func newDB(t *testing.T, layers map[string][][]geom.Point) *geom.LayoutDB {
	t.Helper()
	db := geom.NewLayoutDB()
	for name, polys := range layers {
		ld := &geom.LayerData{}
		for _, pts := range polys {
			ld.Polys = append(ld.Polys, mustPoly(t, pts))
		}
		db.Layers[name] = ld
	}
	return db
}

func layerCount(res *geom.TraceResult, layer string) int {
	return len(res.ByLayer[layer])
}

// S1 — single layer, one net, no vias.
func TestTrace_S1_SingleLayerChain(t *testing.T) {
	db := newDB(t, map[string][][]geom.Point{
		"M1": {
			rectPts(0, 0, 10, 10),
			rectPts(10, 0, 20, 10),
			rectPts(100, 100, 110, 110),
		},
	})
	rule := &ruleio.RuleFile{Starts: []ruleio.StartPos{{Layer: "M1", Pt: geom.Point{X: 5, Y: 5}}}}

	res, err := Trace(rule, db)
	require.NoError(t, err)
	assert.Equal(t, 2, layerCount(res, "M1"))
}

// S2 — two-layer via hop.
func TestTrace_S2_ViaHop(t *testing.T) {
	db := newDB(t, map[string][][]geom.Point{
		"M1": {rectPts(0, 0, 10, 10)},
		"M2": {rectPts(5, 5, 15, 15)},
	})
	rule := &ruleio.RuleFile{
		Starts:   []ruleio.StartPos{{Layer: "M1", Pt: geom.Point{X: 2, Y: 2}}},
		ViaRules: []ruleio.ViaRule{{Layers: []string{"M1", "M2"}}},
	}

	res, err := Trace(rule, db)
	require.NoError(t, err)
	assert.Equal(t, 1, layerCount(res, "M1"))
	assert.Equal(t, 1, layerCount(res, "M2"))
}

// S3 — seed on boundary (corner), inclusive containment.
func TestTrace_S3_BoundarySeed(t *testing.T) {
	db := newDB(t, map[string][][]geom.Point{"M1": {rectPts(0, 0, 10, 10)}})
	rule := &ruleio.RuleFile{Starts: []ruleio.StartPos{{Layer: "M1", Pt: geom.Point{X: 0, Y: 0}}}}

	res, err := Trace(rule, db)
	require.NoError(t, err)
	assert.Equal(t, 1, layerCount(res, "M1"))
}

// S4 — seed outside every polygon: empty output, no layer entry at all.
func TestTrace_S4_SeedOutsideAllPolygons(t *testing.T) {
	db := newDB(t, map[string][][]geom.Point{
		"M1": {rectPts(0, 0, 10, 10), rectPts(20, 20, 30, 30)},
	})
	rule := &ruleio.RuleFile{Starts: []ruleio.StartPos{{Layer: "M1", Pt: geom.Point{X: 50, Y: 50}}}}

	res, err := Trace(rule, db)
	require.NoError(t, err)
	assert.Empty(t, res.ByLayer)
}

// S6 — two StartPos entries but no Gate section: Trace must run Q1/Q2
// using only Starts[0], ignoring Starts[1] entirely.
func TestTrace_S6_TwoStartsNoGateUsesFirstOnly(t *testing.T) {
	db := newDB(t, map[string][][]geom.Point{
		"M1": {rectPts(0, 0, 10, 10), rectPts(100, 100, 110, 110)},
	})
	rule := &ruleio.RuleFile{Starts: []ruleio.StartPos{
		{Layer: "M1", Pt: geom.Point{X: 5, Y: 5}},
		{Layer: "M1", Pt: geom.Point{X: 105, Y: 105}},
	}}
	require.False(t, rule.IsQ3(), "no gate section must never classify as Q3")

	res, err := Trace(rule, db)
	require.NoError(t, err)
	assert.Equal(t, 1, layerCount(res, "M1"))
}

// S5 — Q3 AA gate cut. AA is a horizontal strip; POLY crosses it vertically
// near its midpoint; M1 pads at both ends via AA<->M1. Starts[0] seeds POLY
// (so POLY's own crossing rect is vis1's "high" set); Starts[1] seeds M1,
// whose BFS hops onto AA and back onto the far pad.
//
// Per the gate-cut algorithm (and original_source/engine.cpp's
// BFS_MultiLayer/CutAAByPoly_Rect), only vis2's (Starts[1]'s) non-AA layers
// are emitted — POLY itself is never reachable from Starts[1] here (Via
// only connects AA and M1), so POLY does not appear in the output; it only
// contributes to the AA cut via poly_high. With poly_low empty, aa_cut is
// AA unchanged and aa_on is the AA/POLY overlap, so the AA layer carries
// two overlapping pieces: the full strip and the gate overlap sub-rect.
func TestTrace_S5_GateCut(t *testing.T) {
	db := newDB(t, map[string][][]geom.Point{
		"AA":   {rectPts(0, 0, 100, 10)},
		"POLY": {rectPts(40, -5, 60, 15)},
		"M1":   {rectPts(0, 0, 5, 10), rectPts(95, 0, 100, 10)},
	})
	rule := &ruleio.RuleFile{
		Starts: []ruleio.StartPos{
			{Layer: "POLY", Pt: geom.Point{X: 50, Y: 0}},
			{Layer: "M1", Pt: geom.Point{X: 0, Y: 0}},
		},
		ViaRules: []ruleio.ViaRule{{Layers: []string{"AA", "M1"}}},
		Gate:     ruleio.GateRule{HasGate: true, PolyLayer: "POLY", AALayer: "AA"},
	}
	require.True(t, rule.IsQ3(), "two starts + gate must classify as Q3")

	res, err := Trace(rule, db)
	require.NoError(t, err)

	assert.Equal(t, 2, layerCount(res, "M1"), "both pads must be reachable on M1")
	_, hasPoly := res.ByLayer["POLY"]
	assert.False(t, hasPoly, "POLY is reachable only from Starts[0]; must not appear in output")
	assert.Len(t, res.ByLayer["AA"], 2, "AA must split into the full strip and the gate overlap sub-rect")
}

func TestTrace_NilRule(t *testing.T) {
	_, err := Trace(nil, geom.NewLayoutDB())
	assert.Equal(t, ErrRuleNil, err)
}

func TestTrace_NilLayout(t *testing.T) {
	rule := &ruleio.RuleFile{Starts: []ruleio.StartPos{{Layer: "M1"}}}
	_, err := Trace(rule, nil)
	assert.Equal(t, ErrLayoutNil, err)
}

func TestTrace_ParallelWorkersMatchesSequential(t *testing.T) {
	db := newDB(t, map[string][][]geom.Point{
		"AA":   {rectPts(0, 0, 100, 10), rectPts(200, 0, 300, 10)},
		"POLY": {rectPts(40, -5, 60, 15), rectPts(240, -5, 260, 15)},
		"M1":   {rectPts(0, 0, 5, 10), rectPts(95, 0, 100, 10), rectPts(200, 0, 205, 10), rectPts(295, 0, 300, 10)},
	})
	rule := &ruleio.RuleFile{
		Starts: []ruleio.StartPos{
			{Layer: "POLY", Pt: geom.Point{X: 50, Y: 0}},
			{Layer: "M1", Pt: geom.Point{X: 0, Y: 0}},
		},
		ViaRules: []ruleio.ViaRule{{Layers: []string{"AA", "M1"}}},
		Gate:     ruleio.GateRule{HasGate: true, PolyLayer: "POLY", AALayer: "AA"},
	}

	seq, err := Trace(rule, db, WithWorkers(1))
	require.NoError(t, err)
	par, err := Trace(rule, db, WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, seq.TotalPolygons(), par.TotalPolygons())
}
