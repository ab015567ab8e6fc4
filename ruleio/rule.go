package ruleio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/orthonet/nettrace/geom"
)

// section names a rule-file header line.
type section int

const (
	sectionNone section = iota
	sectionStart
	sectionVia
	sectionGate
)

// LoadRule reads and parses a rule file from path. Blank lines are
// ignored; each line is trimmed before classification. Returns
// ErrOpenRule if the file cannot be opened, ErrMissingStartPos if the
// file contains zero StartPos entries. Malformed StartPos/Via lines are
// skipped silently (spec.md §7 InputFormat taxonomy).
func LoadRule(path string) (*RuleFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenRule, path, err)
	}
	defer f.Close()

	rule := &RuleFile{NeededLayers: make(map[string]struct{})}
	cur := sectionNone

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch line {
		case "StartPos":
			cur = sectionStart
			continue
		case "Via":
			cur = sectionVia
			continue
		case "Gate":
			cur = sectionGate
			continue
		}

		switch cur {
		case sectionStart:
			if sp, ok := parseStartLine(line); ok {
				rule.Starts = append(rule.Starts, sp)
			}
		case sectionVia:
			if toks := strings.Fields(line); len(toks) >= 2 {
				rule.ViaRules = append(rule.ViaRules, ViaRule{Layers: toks})
			}
		case sectionGate:
			if toks := strings.Fields(line); len(toks) >= 2 {
				rule.Gate = GateRule{HasGate: true, PolyLayer: toks[0], AALayer: toks[1]}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenRule, path, err)
	}

	if len(rule.Starts) == 0 {
		return nil, ErrMissingStartPos
	}

	computeNeededLayers(rule)
	return rule, nil
}

// parseStartLine parses "<layer> (<x>,<y>)" into a StartPos. Returns
// ok=false for any malformed line.
func parseStartLine(line string) (StartPos, bool) {
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return StartPos{}, false
	}
	layer := line[:sp]

	lp := strings.IndexByte(line[sp:], '(')
	if lp < 0 {
		return StartPos{}, false
	}
	lp += sp

	cm := strings.IndexByte(line[lp:], ',')
	if cm < 0 {
		return StartPos{}, false
	}
	cm += lp

	rp := strings.IndexByte(line[cm:], ')')
	if rp < 0 {
		return StartPos{}, false
	}
	rp += cm

	x, err := strconv.ParseInt(strings.TrimSpace(line[lp+1:cm]), 10, 32)
	if err != nil {
		return StartPos{}, false
	}
	y, err := strconv.ParseInt(strings.TrimSpace(line[cm+1:rp]), 10, 32)
	if err != nil {
		return StartPos{}, false
	}

	return StartPos{Layer: layer, Pt: geom.Point{X: int32(x), Y: int32(y)}}, true
}

// computeNeededLayers derives rule.NeededLayers from every layer name the
// rule references: start layers, via chain layers, and (if present) the
// gate's poly/AA layers.
func computeNeededLayers(rule *RuleFile) {
	add := func(name string) { rule.NeededLayers[name] = struct{}{} }
	for _, s := range rule.Starts {
		add(s.Layer)
	}
	for _, vr := range rule.ViaRules {
		for _, l := range vr.Layers {
			add(l)
		}
	}
	if rule.Gate.HasGate {
		add(rule.Gate.PolyLayer)
		add(rule.Gate.AALayer)
	}
}
