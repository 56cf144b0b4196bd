// Package rendering assembles the README documents of the awesome lists.
package rendering

import "fmt"

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// UnimplementedHookError is returned when a readme has no section to supply its header and content
type UnimplementedHookError struct {
	Hook string
}

func (e *UnimplementedHookError) Error() string {
	return fmt.Sprintf("%s not implemented", e.Hook)
}
