// Package types provides type definitions for the records rendered into the awesome lists.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Platform is the code hosting service of an open source project
type Platform string

const (
	PlatformGitHub    Platform = "github"
	PlatformBitbucket Platform = "bitbucket"
	PlatformGitLab    Platform = "gitlab"
)

// OpenSourceProject is a single entry of the open source list
type OpenSourceProject struct {
	Name               string   `json:"name"`
	RepositoryURL      string   `json:"repository_url"`
	RepositoryPlatform Platform `json:"repository_platform"`
	License            string   `json:"license"`
	Tags               []string `json:"tags"`
	Description        string   `json:"description,omitempty"`
	SiteURL            string   `json:"site_url,omitempty"`
}
