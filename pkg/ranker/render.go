package ranker

import (
	"fmt"
	"html"
	"strings"

	"github.com/dtnitsch/wikilens/models"
)

// Heading precedes every relevance block returned to the form.
const Heading = "<br><h1>Related Internal Links</h1>"

// RenderHTML renders one "<a>title</a> : score<br>" line per link.
func RenderHTML(wikiBaseURL string, links []models.RankedLink) string {
	base := strings.TrimSuffix(wikiBaseURL, "/")
	var b strings.Builder
	for _, l := range links {
		fmt.Fprintf(&b, `<a href="%s">%s</a> : %d<br>`,
			html.EscapeString(base+l.Href),
			html.EscapeString(LinkText(l.Href)),
			l.Score,
		)
	}
	return b.String()
}

// LinkText is the display title of an internal href: its last segment with
// underscores as spaces.
func LinkText(href string) string {
	if i := strings.LastIndex(href, "/"); i >= 0 {
		href = href[i+1:]
	}
	return strings.ReplaceAll(href, "_", " ")
}
