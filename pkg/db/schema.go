package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- One row per scraped wiki page, keyed by the last path segment of the link
CREATE TABLE IF NOT EXISTS wiki_data (
    page_name TEXT PRIMARY KEY,
    wikilink TEXT NOT NULL,
    content TEXT,
    relevance_ranked TEXT,
    language TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Internal /wiki/ links found on a page, in document order
CREATE TABLE IF NOT EXISTS internal_links (
    page_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    href TEXT NOT NULL,
    PRIMARY KEY (page_name, position),
    FOREIGN KEY (page_name) REFERENCES wiki_data(page_name) ON DELETE CASCADE
);
`
