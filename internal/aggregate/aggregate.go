// Package aggregate collects loaded records and rejects duplicate keys.
package aggregate

import (
	"fmt"

	"github.com/italia-opensource/awesome-italia-opensource/internal/loader"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

// DuplicateKeyError is returned when two records of a domain share the same key
type DuplicateKeyError struct {
	Domain types.Domain
	Key    string
	Record string // human readable description of the offending record
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s already exist", e.Record)
}

// Collect returns the values of entries in order, failing on the first
// record whose key was already seen.
func Collect[T any](domain types.Domain, entries []loader.Record[T], key func(T) string, describe func(T) string) ([]T, error) {
	seen := make(map[string]struct{}, len(entries))
	values := make([]T, 0, len(entries))

	for _, entry := range entries {
		k := key(entry.Value)
		if _, ok := seen[k]; ok {
			return nil, &DuplicateKeyError{
				Domain: domain,
				Key:    k,
				Record: describe(entry.Value),
			}
		}
		seen[k] = struct{}{}
		values = append(values, entry.Value)
	}

	return values, nil
}

// Projects keys open source projects by repository URL.
func Projects(entries []loader.Record[types.OpenSourceProject]) ([]types.OpenSourceProject, error) {
	return Collect(types.DomainOpenSource, entries,
		func(p types.OpenSourceProject) string { return p.RepositoryURL },
		func(p types.OpenSourceProject) string {
			return fmt.Sprintf("Project %s (%s)", p.Name, p.RepositoryURL)
		},
	)
}

// Companies keys companies by name.
func Companies(entries []loader.Record[types.Company]) ([]types.Company, error) {
	return Collect(types.DomainCompanies, entries,
		func(c types.Company) string { return c.Name },
		func(c types.Company) string { return "Company " + c.Name },
	)
}
