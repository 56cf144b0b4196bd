// Package formatting turns records into markdown table rows.
package formatting

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TruncationMarker is appended to descriptions cut by TruncateDescription.
const TruncationMarker = " [..]"

const (
	truncateAbove = 59
	keepRunes     = 60
)

// TruncateDescription keeps the first 60 characters of descriptions longer
// than 59 characters and appends TruncationMarker. A 60 character
// description therefore gains the marker without losing text.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) > truncateAbove {
		return string(runes[:keepRunes]) + TruncationMarker
	}
	return description
}

// JoinTags renders tags as a comma separated list.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// TitleCase capitalizes the first letter of every word and lowercases the rest.
// Any rune that is not a letter ends a word, so "k8s-operator" becomes
// "K8S-Operator" and "o'reilly" becomes "O'Reilly".
func TitleCase(name string) string {
	caser := cases.Title(language.Und)

	var sb strings.Builder
	start := -1
	for i, r := range name {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			sb.WriteString(caser.String(name[start:i]))
			start = -1
		}
		sb.WriteRune(r)
	}
	if start >= 0 {
		sb.WriteString(caser.String(name[start:]))
	}
	return sb.String()
}
