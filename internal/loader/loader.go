// Package loader reads the JSON records of a domain data directory.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/italia-opensource/awesome-italia-opensource/internal/schemas"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
	rootschemas "github.com/italia-opensource/awesome-italia-opensource/schemas"
	"go.uber.org/zap"
)

const jsonSuffix = ".json"

// Entry is a record file found in a data directory
type Entry struct {
	Name string // file name without the .json suffix
	Path string
}

// Record is a parsed record together with the name of the file it came from
type Record[T any] struct {
	Name  string
	Value T
}

// ListEntries returns the JSON files of dir sorted by name.
// Entries that are not regular files are skipped; any other file without
// the .json suffix is an InputShapeError.
func ListEntries(dir string, logger *zap.Logger) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to list directory %s", dir),
			Cause:   err,
		}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		path := filepath.Join(dir, de.Name())

		// Stat follows symlinks so a link to a record file still counts.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			logger.Info(fmt.Sprintf("Skip render '%s'", path))
			continue
		}

		if !strings.HasSuffix(de.Name(), jsonSuffix) {
			return nil, &InputShapeError{Name: de.Name()}
		}

		entries = append(entries, Entry{
			Name: strings.TrimSuffix(de.Name(), jsonSuffix),
			Path: path,
		})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return entries, nil
}

// ReadRecord validates the file at path against schemaName and decodes it into T.
func ReadRecord[T any](path, schemaName string) (T, error) {
	var record T

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return record, &NotFoundError{Path: path}
		}
		return record, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	if err := schemas.ValidateDocument(schemaName, content); err != nil {
		return record, &LoadError{
			Message: fmt.Sprintf("invalid record %s", path),
			Cause:   err,
		}
	}

	if err := json.Unmarshal(content, &record); err != nil {
		return record, &LoadError{
			Message: fmt.Sprintf("failed to unmarshal JSON %s", path),
			Cause:   err,
		}
	}

	return record, nil
}

// Load lists dir and parses every entry, preserving the sorted order.
func Load[T any](dir, schemaName string, logger *zap.Logger) ([]Record[T], error) {
	entries, err := ListEntries(dir, logger)
	if err != nil {
		return nil, err
	}

	records := make([]Record[T], 0, len(entries))
	for _, entry := range entries {
		logger.Info("Check: " + entry.Name)

		value, err := ReadRecord[T](entry.Path, schemaName)
		if err != nil {
			return nil, err
		}
		records = append(records, Record[T]{Name: entry.Name, Value: value})
	}

	return records, nil
}

// LoadProjects loads the open source project records of dir.
func LoadProjects(dir string, logger *zap.Logger) ([]Record[types.OpenSourceProject], error) {
	return Load[types.OpenSourceProject](dir, rootschemas.OpenSourceProject, logger)
}

// LoadCompanies loads the company records of dir.
func LoadCompanies(dir string, logger *zap.Logger) ([]Record[types.Company], error) {
	return Load[types.Company](dir, rootschemas.Company, logger)
}
