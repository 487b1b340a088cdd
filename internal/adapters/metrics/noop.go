package metrics

import "github.com/sandeepsanjusplr/buck/internal/core/ports"

var _ ports.Metrics = NoOp{}

// NoOp discards every observation.
type NoOp struct{}

// CellLoaded does nothing.
func (NoOp) CellLoaded() {}

// RuleTypesBuilt does nothing.
func (NoOp) RuleTypesBuilt(bool, float64) {}

// ParserCreated does nothing.
func (NoOp) ParserCreated(string) {}

// BuildFileParsed does nothing.
func (NoOp) BuildFileParsed(string, float64) {}
