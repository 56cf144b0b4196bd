// Package types provides type definitions for the records rendered into the awesome lists.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Domain identifies one of the list categories rendered by the tool
type Domain string

const (
	// DomainOpenSource is the list of open source projects
	DomainOpenSource Domain = "opensource"
	// DomainCompanies is the list of innovative companies
	DomainCompanies Domain = "companies"
)

// Domains returns every domain in the order they are rendered.
func Domains() []Domain {
	return []Domain{DomainOpenSource, DomainCompanies}
}

// ParseDomain converts a command-line value into a Domain.
func ParseDomain(value string) (Domain, error) {
	for _, d := range Domains() {
		if string(d) == value {
			return d, nil
		}
	}
	return "", fmt.Errorf("Error type %q not in %v", value, Domains())
}

// DisplayName is the title used for the generated README of the domain.
func (d Domain) DisplayName() string {
	switch d {
	case DomainOpenSource:
		return "Awesome Open Source"
	case DomainCompanies:
		return "Awesome Companies"
	default:
		return string(d)
	}
}
