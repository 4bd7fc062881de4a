package db

import (
	"fmt"

	"github.com/dtnitsch/wikilens/pkg/scraper"
	"github.com/urfave/cli/v2"
)

// pageNameArg accepts either a page name or a full wikilink.
func pageNameArg(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", fmt.Errorf("page name or wikilink required")
	}
	name := scraper.PageName(c.Args().First())
	if name == "" {
		return "", fmt.Errorf("invalid page argument: %s", c.Args().First())
	}
	return name, nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
