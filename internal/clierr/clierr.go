// Package clierr defines the five error kinds the evaluation core can
// raise, each with a stable, tested message format. Callers that need to
// distinguish a kind use errors.As against the concrete type rather than
// string-matching the message.
package clierr

import "fmt"

// ParseError reports a failure in the outer statement/pipe/command grammar.
type ParseError struct {
	Offset     int    // byte offset into the original input where the failure was detected
	Expected   string // the grammar class that was expected at Offset
	Unconsumed string // the remaining, unparsed fragment starting at Offset
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: expected %s, found %q", e.Offset, e.Expected, e.Unconsumed)
}

// QueryParseError reports a failure inside a QueryPart's argument, i.e. the
// query sub-language parser in internal/query.
type QueryParseError struct {
	Offset  int
	Message string
}

func (e *QueryParseError) Error() string {
	return fmt.Sprintf("query parse error at offset %d: %s", e.Offset, e.Message)
}

// UnknownCommand reports that a command name was not found in the registry.
// Its message format is stable and relied on by callers.
type UnknownCommand struct {
	Name string
}

func (e *UnknownCommand) Error() string {
	return fmt.Sprintf("Command >%s< is not known. typo?", e.Name)
}

// IllegalPipeline reports a structural pipeline violation: the wrong role
// at a position, or an aggregate/count conflict during coalescing.
type IllegalPipeline struct {
	Name   string
	Detail string
}

func (e *IllegalPipeline) Error() string {
	return fmt.Sprintf("Command >%s< can not be used in this position: %s", e.Name, e.Detail)
}

// Detail strings used by the pipeline validator (internal/cli/validate.go)
// and, for the aggregate/count conflict, by the query coalescer
// (internal/cli/coalesce.go).
const (
	DetailNoSourceData      = "no source data given"
	DetailMustBeFirst       = "must be the first command"
	DetailAggregateConflict = "aggregate already set, can not combine with count"
)

// ArgParseError reports that a descriptor's argument parser rejected its
// raw argument tail.
type ArgParseError struct {
	Command   string
	RawArgs   string
	CauseKind string
	CauseMsg  string
}

func (e *ArgParseError) Error() string {
	return fmt.Sprintf("%s: can not parse: %s: %s: %s", e.Command, e.RawArgs, e.CauseKind, e.CauseMsg)
}
