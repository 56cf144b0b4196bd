// Package schemas embeds the JSON Schemas that every data record must satisfy.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

const (
	// OpenSourceProject is the schema file for open source project records
	OpenSourceProject = "opensource_project.schema.json"
	// Company is the schema file for company records
	Company = "company.schema.json"
)

// Names lists every embedded schema file.
func Names() []string {
	return []string{OpenSourceProject, Company}
}

// Load returns the raw content of an embedded schema.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %s not embedded: %w", name, err)
	}
	return string(data), nil
}
