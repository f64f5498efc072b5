package dataset

import (
	"errors"
	"fmt"
)

// ErrInvalidSelector reports a season or year selector outside the closed
// set the catalogs expose. Selectors are never silently defaulted.
var ErrInvalidSelector = errors.New("invalid selector")

// ErrInvalidMetric reports a metric key outside the closed metric set.
var ErrInvalidMetric = errors.New("invalid metric")

// LoadError reports a failure while reading the source file: a missing
// file, unreadable content, absent required columns, or a cell that cannot
// be coerced. A LoadError is fatal; no partial dataset exists after one.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load dataset: %v", e.Err)
	}
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
