// Package scraper turns a fetched wiki article into the HTML fragment shown to
// the user plus the list of internal wiki links found on the page.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/wikilens/pkg/fetcher"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// Page chrome stripped before the content is extracted.
var unwantedIDs = []string{
	"right-navigation",
	"vector-toc",
	"vector-page-titlebar-toc",
	"p-lang-btn",
	"footer-icons",
}

const (
	internalLinkSelector = `a[href^="/wiki/"]`
	namespacesSelector   = `[aria-label="Namespaces"]`
	containerSelector    = ".mw-page-container"

	// lingua is accurate well below this many characters.
	languageSampleSize = 2000
)

var detectorLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// Result is a scraped page.
type Result struct {
	PageName      string
	Content       string
	Language      string
	InternalLinks []string
}

type Scraper struct {
	fetcher *fetcher.Fetcher

	detectorOnce sync.Once
	detector     lingua.LanguageDetector
}

func NewScraper(f *fetcher.Fetcher) *Scraper {
	return &Scraper{fetcher: f}
}

// Scrape fetches wikilink and parses it.
func (s *Scraper) Scrape(ctx context.Context, wikilink string) (*Result, error) {
	body, err := s.fetcher.GetHtmlBytes(ctx, wikilink)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", wikilink, err)
	}
	return s.Parse(wikilink, body)
}

// Parse extracts internal links, removes navigation chrome and returns the
// page container markup. Links are collected before any element is removed.
func (s *Scraper) Parse(wikilink string, body []byte) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	result := &Result{
		PageName:      PageName(wikilink),
		InternalLinks: internalLinks(doc),
	}

	for _, id := range unwantedIDs {
		doc.Find("#" + id).Remove()
	}
	doc.Find(namespacesSelector).Remove()

	container := doc.Find(containerSelector).First()
	var text string
	switch {
	case container.Length() > 0:
		result.Content, err = goquery.OuterHtml(container)
		if err != nil {
			return nil, fmt.Errorf("failed to render page container: %w", err)
		}
		text = container.Text()
	default:
		result.Content, text = fallbackContent(wikilink, doc)
	}

	result.Language = s.detectLanguage(text)
	return result, nil
}

// fallbackContent runs readability over pages without the usual wiki layout
// and falls back to the whole document when that finds nothing.
func fallbackContent(wikilink string, doc *goquery.Document) (string, string) {
	html, err := doc.Html()
	if err != nil {
		return "", ""
	}

	pageURL, err := url.Parse(wikilink)
	if err == nil {
		rp := readability.NewParser()
		article, err := rp.Parse(strings.NewReader(html), pageURL)
		if err == nil && strings.TrimSpace(article.Content) != "" {
			return article.Content, article.TextContent
		}
	}
	return html, doc.Text()
}

func internalLinks(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var links []string
	doc.Find(internalLinkSelector).Each(func(i int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})
	return links
}

func (s *Scraper) detectLanguage(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	if len(text) > languageSampleSize {
		text = text[:languageSampleSize]
	}

	s.detectorOnce.Do(func() {
		s.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectorLanguages...).
			Build()
	})

	language, ok := s.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}

// PageName returns the last path segment of wikilink, the key pages are cached under.
func PageName(wikilink string) string {
	path := wikilink
	if u, err := url.Parse(wikilink); err == nil {
		path = u.Path
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path
}
