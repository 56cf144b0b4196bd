// Package formatting turns records into markdown table rows.
package formatting

import (
	"fmt"

	"github.com/italia-opensource/awesome-italia-opensource/internal/markdown"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

var (
	// ProjectColumns is the table header of the open source list
	ProjectColumns = []string{"Name", "Repository", "Stack", "Description"}
	// CompanyColumns is the table header of the companies list
	CompanyColumns = []string{"Name", "Type", "Market", "Tags", "Description"}
)

// ProjectRow formats an open source project as a table row.
func ProjectRow(p types.OpenSourceProject) ([]string, error) {
	repository, err := RepositoryBadges(p.RepositoryPlatform, p.RepositoryURL, p.License)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", p.Name, err)
	}

	return []string{
		markdown.Link(TitleCase(p.Name), p.SiteURL),
		markdown.Link(repository, p.RepositoryURL),
		JoinTags(p.Tags),
		TruncateDescription(p.Description),
	}, nil
}

// CompanyRow formats a company as a table row. The name is kept verbatim.
func CompanyRow(c types.Company) []string {
	return []string{
		markdown.Link(c.Name, c.SiteURL),
		c.Type,
		c.Market,
		JoinTags(c.Tags),
		TruncateDescription(c.Description),
	}
}
