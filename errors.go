package logsurgeon

import (
	"errors"
	"fmt"
)

// Sentinel errors for parser configuration and usage failures.
var (
	ErrParserFrozen     = errors.New("parser configuration is frozen after Compile")
	ErrNotCompiled      = errors.New("parser has not been compiled")
	ErrNoInput          = errors.New("no input stream has been set")
	ErrNoPatterns       = errors.New("at least one variable pattern is required")
	ErrEmptyPatternName = errors.New("variable pattern name cannot be empty")
)

// PatternCompileError reports a variable pattern whose regex source
// failed to compile. Index is the declaration position of the pattern,
// Name its registered name, and Err the underlying engine error.
type PatternCompileError struct {
	Index int
	Name  string
	Err   error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("compiling variable pattern %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *PatternCompileError) Unwrap() error {
	return e.Err
}
