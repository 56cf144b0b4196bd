// Package loader reads the JSON records of a domain data directory.
package loader

import "fmt"

// LoadError represents an error during file I/O, JSON parsing or schema validation
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// InputShapeError is returned when a data directory holds a file that is not JSON
type InputShapeError struct {
	Name string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("File %s is not json", e.Name)
}

// NotFoundError is returned when a listed record file disappeared before parsing
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record file not found: %s", e.Path)
}
