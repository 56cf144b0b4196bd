// Package formatting turns records into markdown table rows.
package formatting

import (
	"fmt"

	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

// UnsupportedPlatformError is returned for a repository platform without badge templates
type UnsupportedPlatformError struct {
	Platform types.Platform
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported repository platform %q", string(e.Platform))
}

// RepositoryURLError is returned when a repository URL cannot be parsed
type RepositoryURLError struct {
	URL   string
	Cause error
}

func (e *RepositoryURLError) Error() string {
	return fmt.Sprintf("invalid repository url %s: %v", e.URL, e.Cause)
}

func (e *RepositoryURLError) Unwrap() error {
	return e.Cause
}
