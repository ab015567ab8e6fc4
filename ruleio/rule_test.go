package ruleio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/orthonet/nettrace/geom"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRule_Basic(t *testing.T) {
	path := writeTemp(t, "rule.txt", `
StartPos
M1 (5,5)
M2 (7,7)

Via
M1 M2

Gate
POLY AA
`)
	rule, err := LoadRule(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rule.Starts) != 2 || rule.Starts[0].Layer != "M1" || rule.Starts[0].Pt != (geom.Point{X: 5, Y: 5}) {
		t.Fatalf("unexpected starts: %+v", rule.Starts)
	}
	if len(rule.ViaRules) != 1 || len(rule.ViaRules[0].Layers) != 2 {
		t.Fatalf("unexpected via rules: %+v", rule.ViaRules)
	}
	if !rule.Gate.HasGate || rule.Gate.PolyLayer != "POLY" || rule.Gate.AALayer != "AA" {
		t.Fatalf("unexpected gate: %+v", rule.Gate)
	}
	for _, want := range []string{"M1", "M2", "POLY", "AA"} {
		if _, ok := rule.NeededLayers[want]; !ok {
			t.Errorf("needed layers missing %q: %v", want, rule.NeededLayers)
		}
	}
	if !rule.IsQ3() {
		t.Error("two starts + gate must classify as Q3")
	}
}

func TestLoadRule_NoGate(t *testing.T) {
	path := writeTemp(t, "rule.txt", "StartPos\nM1 (0,0)\nM1 (1,1)\n")
	rule, err := LoadRule(path)
	if err != nil {
		t.Fatal(err)
	}
	if rule.IsQ3() {
		t.Error("no gate section must never classify as Q3, even with two starts (S6)")
	}
}

func TestLoadRule_MissingStartPos(t *testing.T) {
	path := writeTemp(t, "rule.txt", "Via\nM1 M2\n")
	if _, err := LoadRule(path); !errors.Is(err, ErrMissingStartPos) {
		t.Fatalf("want ErrMissingStartPos, got %v", err)
	}
}

func TestLoadRule_CannotOpen(t *testing.T) {
	if _, err := LoadRule(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, ErrOpenRule) {
		t.Fatalf("want ErrOpenRule, got %v", err)
	}
}

func TestLoadRule_MalformedLineSkipped(t *testing.T) {
	path := writeTemp(t, "rule.txt", "StartPos\nbroken-line-no-point\nM1 (2,2)\n")
	rule, err := LoadRule(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rule.Starts) != 1 {
		t.Fatalf("malformed line should be skipped, got %+v", rule.Starts)
	}
}

func TestLoadLayoutNeededLayers_SkipsUnneeded(t *testing.T) {
	path := writeTemp(t, "layout.txt", `
M1
(0,0),(10,0),(10,10),(0,10)
M2
(0,0),(5,0),(5,5),(0,5)
`)
	db, err := LoadLayoutNeededLayers(path, map[string]struct{}{"M1": {}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := db.Layer("M1"); !ok {
		t.Fatal("needed layer M1 must be loaded")
	}
	if _, ok := db.Layer("M2"); ok {
		t.Fatal("unneeded layer M2 must not be loaded")
	}
}

func TestLoadLayoutNeededLayers_DropsMalformedPolygon(t *testing.T) {
	path := writeTemp(t, "layout.txt", "M1\n(0,0),(10,0),(10,10)\n(0,0),(10,0),(10,10),(0,10)\n")
	db, err := LoadLayoutNeededLayers(path, map[string]struct{}{"M1": {}})
	if err != nil {
		t.Fatal(err)
	}
	ld, _ := db.Layer("M1")
	if len(ld.Polys) != 1 {
		t.Fatalf("expected only the well-formed polygon to survive, got %d", len(ld.Polys))
	}
}

func TestLoadLayoutNeededLayers_CannotOpen(t *testing.T) {
	_, err := LoadLayoutNeededLayers(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if !errors.Is(err, ErrOpenLayout) {
		t.Fatalf("want ErrOpenLayout, got %v", err)
	}
}

func TestIsLayerLine(t *testing.T) {
	if !isLayerLine("M1_layer") {
		t.Error("alnum+underscore must classify as a layer line")
	}
	if isLayerLine("(0,0),(1,1)") {
		t.Error("a polygon line must not classify as a layer line")
	}
}
