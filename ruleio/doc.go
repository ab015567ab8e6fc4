// Package ruleio loads the two line-oriented input files the CLI accepts:
// the rule file (seed points, via relations, optional gate directive) and
// the layout file (named layers of polygons), restricted to the layers the
// rule actually needs. This is the "external collaborator" layer spec.md
// §6 scopes out of the core geometric engine — lexical parsing only, no
// geometric reasoning.
//
// What
//
//   - RuleFile: 1-2 StartPos entries, any number of ViaRule chains, an
//     optional GateRule, and the derived NeededLayers set.
//   - LoadRule parses the "StartPos" / "Via" / "Gate" section grammar.
//   - LoadLayoutNeededLayers streams a layout file, retaining only
//     polygons on layers present in a RuleFile's NeededLayers, skipping
//     other layers' polygon lines without parsing them.
//
// Why
//
//   - A layout file may enumerate far more layers than any one rule needs;
//     skipping unreferenced layers' polygon lines (not just discarding
//     their parsed polygons) keeps ingestion cost proportional to what the
//     query actually touches.
//
// Errors
//
//   - ErrMissingStartPos – rule file has zero StartPos entries.
//   - ErrOpenRule / ErrOpenLayout – the respective file could not be opened.
//
// Malformed polygon lines within a retained layer are skipped silently, as
// is a malformed StartPos or Via line — spec.md's InputFormat taxonomy
// distinguishes "missing StartPos section" (fatal) from "one bad line"
// (dropped).
package ruleio
