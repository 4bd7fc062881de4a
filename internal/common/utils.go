package common

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrEmptyWikilink is returned when the submitted link is blank after cleanup.
var ErrEmptyWikilink = errors.New("wikilink is empty")

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation and markdown artifacts.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	trailingChars := []string{",", ".", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	leadingChars := []string{"[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// ResolveWikilink turns form input into an absolute article URL. Full http(s)
// URLs pass through; anything else is read as an article title (or a
// /wiki/ path) on wikiBaseURL.
func ResolveWikilink(raw, wikiBaseURL string) (string, error) {
	cleaned := SanitizeURL(raw)
	if cleaned == "" {
		return "", ErrEmptyWikilink
	}

	if strings.HasPrefix(cleaned, "http://") || strings.HasPrefix(cleaned, "https://") {
		parsed, err := url.Parse(cleaned)
		if err != nil || parsed.Host == "" {
			return "", fmt.Errorf("invalid wikilink %q", raw)
		}
		if strings.ContainsAny(parsed.Host, "{}[]<>\"' ") {
			return "", fmt.Errorf("invalid wikilink host %q", parsed.Host)
		}
		return cleaned, nil
	}

	title := strings.TrimPrefix(cleaned, "/")
	title = strings.TrimPrefix(title, "wiki/")
	title = strings.ReplaceAll(title, " ", "_")
	return strings.TrimSuffix(wikiBaseURL, "/") + "/wiki/" + url.PathEscape(title), nil
}
