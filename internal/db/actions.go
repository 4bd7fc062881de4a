package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/wikilens/internal/common"
	"github.com/dtnitsch/wikilens/pkg/caching"
	dbpkg "github.com/dtnitsch/wikilens/pkg/db"
	"github.com/urfave/cli/v2"
)

// PagesAction lists cached pages, most recently updated first.
func PagesAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	pages, err := database.ListPages(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}

	if len(pages) == 0 {
		fmt.Println("No pages cached")
		return nil
	}

	fmt.Printf("%-40s %-6s %-20s %s\n", "Page", "Lang", "Updated", "Wikilink")
	fmt.Println(strings.Repeat("-", 110))
	for _, p := range pages {
		fmt.Printf("%-40s %-6s %-20s %s\n",
			truncate(p.PageName, 40),
			p.Language,
			p.UpdatedAt.Format("2006-01-02 15:04:05"),
			p.Wikilink,
		)
	}

	fmt.Printf("\nTotal: %d pages\n", len(pages))
	fmt.Printf("\nTip: Use 'wikilens db show <page>' to see details\n")
	return nil
}

// PageAction prints one cached page as JSON.
func PageAction(c *cli.Context) error {
	pageName, err := pageNameArg(c)
	if err != nil {
		return err
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	page, err := database.GetPage(pageName)
	if errors.Is(err, dbpkg.ErrNotFound) {
		return cli.Exit(fmt.Sprintf("No cached page named %q", pageName), 1)
	}
	if err != nil {
		return fmt.Errorf("failed to get page: %w", err)
	}

	if !c.Bool("content") {
		page.Content = ""
		page.RelevanceRanked = ""
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}

// DeleteAction drops a cached page so the next submission scrapes it again.
// The raw HTML in the fetch cache is dropped too when a cache dir is set.
func DeleteAction(c *cli.Context) error {
	pageName, err := pageNameArg(c)
	if err != nil {
		return err
	}

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var cache *caching.Cache
	if cfg.CacheDir != "" {
		cache, err = caching.NewCache(cfg.CacheDir, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("failed to open page cache: %w", err)
		}
	}

	if err := dropPage(database, cache, pageName); err != nil {
		if errors.Is(err, dbpkg.ErrNotFound) {
			return cli.Exit(fmt.Sprintf("No cached page named %q", pageName), 1)
		}
		return err
	}
	fmt.Printf("Deleted %s\n", pageName)
	return nil
}

// dropPage deletes pageName from the store and, when cache is non-nil, the
// fetched HTML stored under its wikilink.
func dropPage(database *dbpkg.DB, cache *caching.Cache, pageName string) error {
	page, err := database.GetPage(pageName)
	if err != nil {
		return err
	}
	if err := database.DeletePage(pageName); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	if cache == nil {
		return nil
	}
	if err := cache.Invalidate(page.Wikilink); err != nil {
		return fmt.Errorf("failed to drop cached html for %s: %w", pageName, err)
	}
	return nil
}

func openDB(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}
