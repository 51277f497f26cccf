package models

import (
	"fmt"
	"strings"
)

// SchemaError reports intake columns missing from the batch header. It is
// raised before any write happens.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("intake batch missing required columns: %s",
		strings.Join(e.Missing, ", "))
}

// StatementError wraps a failed store statement with the step it belonged to
// and the statement text, so the failing SQL is available for diagnosis.
type StatementError struct {
	Step  string
	Query string
	Err   error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement failed during %s: %v", e.Step, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }
