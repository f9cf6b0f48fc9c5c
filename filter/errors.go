package filter

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression is returned when compiling a blank expression
var ErrEmptyExpression = errors.New("empty expression")

type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter failed on a specific record
	EvaluationError struct {
		Expression string
		Index      int
		Err        error
	}

	// UnknownPresetError is returned for preset names that were never registered
	UnknownPresetError struct {
		Name string
	}
)

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compiling filter '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluating filter '%s' on record %d: %v", e.Expression, e.Index, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("filter preset '%s' not found", e.Name)
}
