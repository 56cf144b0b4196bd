// Package rendering assembles the README documents of the awesome lists.
package rendering

import (
	"github.com/italia-opensource/awesome-italia-opensource/internal/config"
	"github.com/italia-opensource/awesome-italia-opensource/internal/formatting"
	"github.com/italia-opensource/awesome-italia-opensource/internal/markdown"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

// OpensourceSection renders the open source projects list
type OpensourceSection struct {
	Projects []types.OpenSourceProject
}

func (s *OpensourceSection) Len() int { return len(s.Projects) }

func (s *OpensourceSection) Header(doc *markdown.Document, identity config.Identity) {
	intro(doc, identity,
		"Italia Opensource is a list of open source projects created by Italian companies or developers.",
		"The repository intends to give visibility to open source projects and stimulate the community to contribute to growing the ecosystem.",
	)
}

func (s *OpensourceSection) Content(doc *markdown.Document) error {
	listHeading(doc, "Open source projects")

	rows := make([][]string, 0, len(s.Projects))
	for _, p := range s.Projects {
		row, err := formatting.ProjectRow(p)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return doc.AddTable(formatting.ProjectColumns, rows)
}

// CompaniesSection renders the companies list
type CompaniesSection struct {
	Companies []types.Company
}

func (s *CompaniesSection) Len() int { return len(s.Companies) }

func (s *CompaniesSection) Header(doc *markdown.Document, identity config.Identity) {
	intro(doc, identity,
		"Awesome Italia Innovative Companies is a list of italian startups, scale-up and companies that innovate.",
		"The repository intends to give visibility to companies and stimulate the community to contribute to growing the ecosystem.",
	)
}

func (s *CompaniesSection) Content(doc *markdown.Document) error {
	listHeading(doc, "Companies")

	rows := make([][]string, 0, len(s.Companies))
	for _, c := range s.Companies {
		rows = append(rows, formatting.CompanyRow(c))
	}
	return doc.AddTable(formatting.CompanyColumns, rows)
}
