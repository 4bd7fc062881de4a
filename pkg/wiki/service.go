// Package wiki serves page content and relevance rankings for submitted
// wikilinks, scraping and ranking on cache misses.
package wiki

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/wikilens/internal/common"
	"github.com/dtnitsch/wikilens/models"
	"github.com/dtnitsch/wikilens/pkg/db"
	"github.com/dtnitsch/wikilens/pkg/ranker"
	"github.com/dtnitsch/wikilens/pkg/scraper"
	"golang.org/x/sync/singleflight"
)

// ErrEmptyWikilink is returned for a blank wikilink.
var ErrEmptyWikilink = common.ErrEmptyWikilink

// Store is the page cache.
type Store interface {
	GetContent(pageName string) (string, error)
	GetRelevanceRanked(pageName string) (string, error)
	GetInternalLinks(pageName string) ([]string, error)
	SaveContent(wikilink, pageName, content, language string) error
	SaveRelevanceRanked(wikilink, pageName, ranked string) error
	SaveInternalLinks(pageName string, links []string) error
}

// PageScraper fetches and parses a wiki page.
type PageScraper interface {
	Scrape(ctx context.Context, wikilink string) (*scraper.Result, error)
}

// LinkRanker orders internal links by relevance.
type LinkRanker interface {
	Rank(ctx context.Context, wikilink string, links []string) ([]models.RankedLink, error)
}

type Service struct {
	store       Store
	scraper     PageScraper
	ranker      LinkRanker
	wikiBaseURL string
	logger      *slog.Logger

	scrapes singleflight.Group
}

func NewService(store Store, sc PageScraper, rk LinkRanker, wikiBaseURL string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if wikiBaseURL == "" {
		wikiBaseURL = models.DefaultWikiBaseURL
	}
	return &Service{
		store:       store,
		scraper:     sc,
		ranker:      rk,
		wikiBaseURL: wikiBaseURL,
		logger:      logger,
	}
}

// Content returns the page markup for wikilink, from cache when possible.
func (s *Service) Content(ctx context.Context, wikilink string) (string, error) {
	start := time.Now()
	link, pageName, err := s.resolve(wikilink)
	if err != nil {
		return "", err
	}

	content, err := s.store.GetContent(pageName)
	switch {
	case err == nil:
		s.logger.Info("data found in the database", "page_name", pageName)
		return content, nil
	case !errors.Is(err, db.ErrNotFound):
		s.logger.Error("error checking database", "page_name", pageName, "error", err)
	}

	s.logger.Info("data not found in the database, scraping website", "page_name", pageName)
	page, err := s.scrape(ctx, link, pageName)
	if err != nil {
		return "", err
	}

	s.logger.Info("request processed", "page_name", pageName, "duration", time.Since(start))
	return page.Content, nil
}

// RelevanceRanked returns the heading followed by the ranked internal links
// of wikilink. Rankings are cached per page.
func (s *Service) RelevanceRanked(ctx context.Context, wikilink string) (string, error) {
	start := time.Now()
	link, pageName, err := s.resolve(wikilink)
	if err != nil {
		return "", err
	}

	ranked, err := s.store.GetRelevanceRanked(pageName)
	if err == nil {
		return ranker.Heading + ranked, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		s.logger.Error("error checking database", "page_name", pageName, "error", err)
	}

	links, err := s.internalLinks(ctx, link, pageName)
	if err != nil {
		return "", err
	}

	rankedLinks, err := s.ranker.Rank(ctx, link, links)
	if err != nil {
		return "", fmt.Errorf("failed to rank links for %s: %w", pageName, err)
	}
	ranked = ranker.RenderHTML(s.wikiBaseURL, rankedLinks)

	s.logger.Info("saving relevance_ranked data to database", "page_name", pageName, "links", len(rankedLinks))
	if err := s.store.SaveRelevanceRanked(link, pageName, ranked); err != nil {
		s.logger.Error("error saving to database", "page_name", pageName, "error", err)
	}

	s.logger.Info("request processed", "page_name", pageName, "duration", time.Since(start))
	return ranker.Heading + ranked, nil
}

func (s *Service) resolve(wikilink string) (string, string, error) {
	link, err := common.ResolveWikilink(wikilink, s.wikiBaseURL)
	if err != nil {
		return "", "", err
	}
	return link, scraper.PageName(link), nil
}

// internalLinks prefers the stored links and scrapes the page when none are known.
func (s *Service) internalLinks(ctx context.Context, link, pageName string) ([]string, error) {
	links, err := s.store.GetInternalLinks(pageName)
	if err != nil {
		s.logger.Error("error reading internal links", "page_name", pageName, "error", err)
	}
	if len(links) > 0 {
		return links, nil
	}

	page, err := s.scrape(ctx, link, pageName)
	if err != nil {
		return nil, err
	}
	return page.InternalLinks, nil
}

// scrape collapses concurrent scrapes of one page into a single fetch and
// stores the sanitized result. Store failures are logged; the scraped page is
// still returned.
//
// The shared fetch is not tied to the cancellation of whichever caller
// started it; other callers may still be waiting on it.
func (s *Service) scrape(ctx context.Context, link, pageName string) (*scraper.Result, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.scrapes.Do(pageName, func() (any, error) {
		page, err := s.scraper.Scrape(shared, link)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve content from wikipedia: %w", err)
		}
		page.Content = Sanitize(page.Content)

		s.logger.Info("saving wikilink, page_name, and content data to database", "page_name", pageName)
		if err := s.store.SaveContent(link, pageName, page.Content, page.Language); err != nil {
			s.logger.Error("error saving to database", "page_name", pageName, "error", err)
			return page, nil
		}
		if err := s.store.SaveInternalLinks(pageName, page.InternalLinks); err != nil {
			s.logger.Error("error saving internal links", "page_name", pageName, "error", err)
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*scraper.Result), nil
}
