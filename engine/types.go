package engine

import "errors"

// ErrRuleNil is returned when Trace is called with a nil RuleFile.
var ErrRuleNil = errors.New("engine: rule is nil")

// ErrLayoutNil is returned when Trace is called with a nil LayoutDB.
var ErrLayoutNil = errors.New("engine: layout is nil")
