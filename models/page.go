package models

import "time"

// WikiPage is one cached row of scraped wiki data.
type WikiPage struct {
	Wikilink        string    `json:"wikilink"`
	PageName        string    `json:"page_name"`
	Content         string    `json:"content,omitempty"`
	RelevanceRanked string    `json:"relevance_ranked,omitempty"`
	Language        string    `json:"language,omitempty"`
	InternalLinks   []string  `json:"internal_links,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RankedLink is an internal wiki link with a relevance score from 1 to 10.
type RankedLink struct {
	Href  string `json:"href"`
	Score int    `json:"score"`
}
