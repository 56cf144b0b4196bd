// Package formatting turns records into markdown table rows.
package formatting

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

const (
	shieldsBase = "https://img.shields.io"
	// starLabel is the url-encoded star emoji used as label of the stars badge
	starLabel = "%E2%AD%90%EF%B8%8F"
	badgeSep  = "<br>"
)

func badge(src, alt string) string {
	return fmt.Sprintf(`<img align="right" src="%s" alt="%s">`, src, alt)
}

// LicenseBadge renders the static license badge.
func LicenseBadge(license string) string {
	message := strings.ReplaceAll(url.QueryEscape(license), "+", "%20")
	return badge(fmt.Sprintf("%s/static/v1?label=license&message=%s&color=orange", shieldsBase, message), "License")
}

// RepositoryPath extracts the badge path of a repository URL.
// For github and bitbucket it is "owner/repo", the first two segments of the
// path after the host. For gitlab the leading separator is kept and counts
// as the first segment, so the path is "/owner". Shorter paths return what
// is there.
func RepositoryPath(platform types.Platform, repositoryURL string) (string, error) {
	u, err := url.Parse(repositoryURL)
	if err != nil {
		return "", &RepositoryURLError{URL: repositoryURL, Cause: err}
	}

	segments := strings.Split(u.Path, "/")
	if platform != types.PlatformGitLab && len(segments) > 0 && segments[0] == "" {
		segments = segments[1:]
	}
	return strings.Join(segments[:min(2, len(segments))], "/"), nil
}

// RepositoryBadges renders the stacked badges of the repository cell.
func RepositoryBadges(platform types.Platform, repositoryURL, license string) (string, error) {
	path, err := RepositoryPath(platform, repositoryURL)
	if err != nil {
		return "", err
	}

	var badges []string
	switch platform {
	case types.PlatformGitHub:
		badges = append(badges,
			badge(fmt.Sprintf("%s/github/stars/%s?label=%s&logo=github", shieldsBase, path, starLabel), "Stars"),
			badge(fmt.Sprintf("%s/github/issues-raw/%s", shieldsBase, path), "Issues"),
		)
	case types.PlatformBitbucket:
		// Bitbucket exposes no stars metric.
		badges = append(badges,
			badge(fmt.Sprintf("%s/bitbucket/issues-raw/%s", shieldsBase, path), "Issues"),
		)
	case types.PlatformGitLab:
		badges = append(badges,
			badge(fmt.Sprintf("%s/gitlab/stars/%s?label=%s&logo=gitlab", shieldsBase, path, starLabel), "Stars"),
			badge(fmt.Sprintf("%s/gitlab/issues/open-raw/%s", shieldsBase, path), "Issues"),
		)
	default:
		return "", &UnsupportedPlatformError{Platform: platform}
	}

	badges = append(badges, LicenseBadge(license))
	return strings.Join(badges, badgeSep), nil
}
