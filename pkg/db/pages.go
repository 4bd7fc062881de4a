package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtnitsch/wikilens/models"
)

// ErrNotFound is returned when no row exists for a page name.
var ErrNotFound = errors.New("page not found")

// GetContent returns the cached content HTML for pageName.
// A row with empty content counts as a miss.
func (db *DB) GetContent(pageName string) (string, error) {
	return db.getColumn("content", pageName, true)
}

// GetRelevanceRanked returns the cached relevance-ranked HTML for pageName.
// NULL means never ranked (ErrNotFound); an empty string is a stored ranking
// of a page without internal links.
func (db *DB) GetRelevanceRanked(pageName string) (string, error) {
	return db.getColumn("relevance_ranked", pageName, false)
}

func (db *DB) getColumn(column, pageName string, emptyIsMiss bool) (string, error) {
	var value sql.NullString
	query := fmt.Sprintf("SELECT %s FROM wiki_data WHERE page_name = ?", column)
	err := db.QueryRow(query, pageName).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", column, err)
	}
	if !value.Valid || (emptyIsMiss && value.String == "") {
		return "", ErrNotFound
	}
	return value.String, nil
}

// SaveContent stores scraped content for a page, inserting the row if needed.
// The relevance_ranked column of an existing row is left alone.
func (db *DB) SaveContent(wikilink, pageName, content, language string) error {
	_, err := db.Exec(`
		INSERT INTO wiki_data (page_name, wikilink, content, language)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(page_name) DO UPDATE SET
			wikilink = excluded.wikilink,
			content = excluded.content,
			language = excluded.language,
			updated_at = CURRENT_TIMESTAMP
	`, pageName, wikilink, content, language)
	if err != nil {
		return fmt.Errorf("failed to save content: %w", err)
	}
	return nil
}

// SaveRelevanceRanked updates relevance_ranked when the row exists and
// inserts a new row with empty content otherwise.
func (db *DB) SaveRelevanceRanked(wikilink, pageName, ranked string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM wiki_data WHERE page_name = ?", pageName).Scan(&exists)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.Exec(`
			INSERT INTO wiki_data (page_name, wikilink, content, relevance_ranked)
			VALUES (?, ?, '', ?)
		`, pageName, wikilink, ranked)
	case err == nil:
		_, err = tx.Exec(`
			UPDATE wiki_data SET relevance_ranked = ?, updated_at = CURRENT_TIMESTAMP
			WHERE page_name = ?
		`, ranked, pageName)
	}
	if err != nil {
		return fmt.Errorf("failed to save relevance ranking: %w", err)
	}

	return tx.Commit()
}

// SaveInternalLinks replaces the stored internal links of pageName.
// The page row must already exist.
func (db *DB) SaveInternalLinks(pageName string, links []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM internal_links WHERE page_name = ?", pageName); err != nil {
		return fmt.Errorf("failed to clear internal links: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO internal_links (page_name, position, href) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, href := range links {
		if _, err := stmt.Exec(pageName, i, href); err != nil {
			return fmt.Errorf("failed to insert internal link: %w", err)
		}
	}

	return tx.Commit()
}

// GetInternalLinks returns the stored internal links of pageName in document order.
func (db *DB) GetInternalLinks(pageName string) ([]string, error) {
	rows, err := db.Query("SELECT href FROM internal_links WHERE page_name = ? ORDER BY position", pageName)
	if err != nil {
		return nil, fmt.Errorf("failed to query internal links: %w", err)
	}
	defer rows.Close()

	var links []string
	for rows.Next() {
		var href string
		if err := rows.Scan(&href); err != nil {
			return nil, fmt.Errorf("failed to scan internal link: %w", err)
		}
		links = append(links, href)
	}
	return links, rows.Err()
}

// GetPage returns the full cached row for pageName.
func (db *DB) GetPage(pageName string) (*models.WikiPage, error) {
	var (
		page     models.WikiPage
		content  sql.NullString
		ranked   sql.NullString
		language sql.NullString
	)
	err := db.QueryRow(`
		SELECT page_name, wikilink, content, relevance_ranked, language, created_at, updated_at
		FROM wiki_data WHERE page_name = ?
	`, pageName).Scan(&page.PageName, &page.Wikilink, &content, &ranked, &language, &page.CreatedAt, &page.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	page.Content = content.String
	page.RelevanceRanked = ranked.String
	page.Language = language.String

	page.InternalLinks, err = db.GetInternalLinks(pageName)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ListPages returns the most recently updated pages, newest first.
// Content columns are not loaded.
func (db *DB) ListPages(limit int) ([]models.WikiPage, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT page_name, wikilink, language, created_at, updated_at
		FROM wiki_data
		ORDER BY updated_at DESC, page_name
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.WikiPage
	for rows.Next() {
		var (
			p        models.WikiPage
			language sql.NullString
		)
		if err := rows.Scan(&p.PageName, &p.Wikilink, &language, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		p.Language = language.String
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// DeletePage removes a page and its internal links.
func (db *DB) DeletePage(pageName string) error {
	result, err := db.Exec("DELETE FROM wiki_data WHERE page_name = ?", pageName)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
