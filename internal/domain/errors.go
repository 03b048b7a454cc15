package domain

import (
	"errors"
	"fmt"
)

// SchemaError means a required column family is entirely absent for an
// entity. It is fatal: the upload cannot be loaded.
type SchemaError struct {
	Entity string
	Field  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: no column found for required field %q", e.Entity, e.Field)
}

// LoadError means a file could not be read as tabular data at all.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrPeriodDataUnavailable is returned by the periodized P&L generator
// when the optional accountingperiod table was not uploaded.
var ErrPeriodDataUnavailable = errors.New("period data unavailable: no accountingperiod table was loaded")
