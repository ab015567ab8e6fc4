package ruleio

import (
	"errors"

	"github.com/orthonet/nettrace/geom"
)

// ErrMissingStartPos is returned when a rule file has no StartPos entries.
var ErrMissingStartPos = errors.New("ruleio: rule file has no StartPos entries")

// ErrOpenRule is returned when the rule file cannot be opened for reading.
var ErrOpenRule = errors.New("ruleio: cannot open rule file")

// ErrOpenLayout is returned when the layout file cannot be opened for
// reading.
var ErrOpenLayout = errors.New("ruleio: cannot open layout file")

// StartPos is one seed: a layer name and the point to seed BFS from.
type StartPos struct {
	Layer string
	Pt    geom.Point
}

// ViaRule is an ordered chain of >=2 layer names expressing pairwise
// adjacency between consecutive layers (symmetric).
type ViaRule struct {
	Layers []string
}

// GateRule names the poly/AA layer pair for Q3's gate-cutting directive.
// HasGate is false when the rule file had no Gate section at all.
type GateRule struct {
	HasGate   bool
	PolyLayer string
	AALayer   string
}

// RuleFile is the fully parsed contents of a rule file.
type RuleFile struct {
	Starts       []StartPos
	ViaRules     []ViaRule
	Gate         GateRule
	NeededLayers map[string]struct{}
}

// IsQ3 reports whether this rule selects the Q3 (two-seed gate-cut) query
// shape: at least two StartPos entries and a present Gate section.
func (r *RuleFile) IsQ3() bool {
	return len(r.Starts) >= 2 && r.Gate.HasGate
}
