// Package types provides type definitions for the records rendered into the awesome lists.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Company is a single entry of the companies list
type Company struct {
	Name        string   `json:"name"`
	SiteURL     string   `json:"site_url,omitempty"`
	Type        string   `json:"type,omitempty"`
	Market      string   `json:"market,omitempty"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
}
