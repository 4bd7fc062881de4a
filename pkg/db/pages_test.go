package db

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestGetContentMiss(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetContent("Cat"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetContent() error = %v, want ErrNotFound", err)
	}
	if _, err := db.GetRelevanceRanked("Cat"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetRelevanceRanked() error = %v, want ErrNotFound", err)
	}
}

func TestSaveAndGetContent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveContent("https://en.wikipedia.org/wiki/Cat", "Cat", "<p>cat</p>", "en"); err != nil {
		t.Fatalf("SaveContent() error = %v", err)
	}

	got, err := db.GetContent("Cat")
	if err != nil {
		t.Fatalf("GetContent() error = %v", err)
	}
	if got != "<p>cat</p>" {
		t.Errorf("GetContent() = %q, want %q", got, "<p>cat</p>")
	}

	// Saving again overwrites content.
	if err := db.SaveContent("https://en.wikipedia.org/wiki/Cat", "Cat", "<p>cats</p>", "en"); err != nil {
		t.Fatalf("SaveContent() second call error = %v", err)
	}
	got, _ = db.GetContent("Cat")
	if got != "<p>cats</p>" {
		t.Errorf("GetContent() after overwrite = %q, want %q", got, "<p>cats</p>")
	}
}

func TestSaveRelevanceRanked(t *testing.T) {
	tests := []struct {
		name        string
		seedContent bool
		wantContent string
		wantErr     error
	}{
		{
			name:        "existing row keeps content",
			seedContent: true,
			wantContent: "<p>dog</p>",
		},
		{
			name:        "missing row is inserted without content",
			seedContent: false,
			wantErr:     ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			defer db.Close()

			if tt.seedContent {
				if err := db.SaveContent("https://en.wikipedia.org/wiki/Dog", "Dog", "<p>dog</p>", ""); err != nil {
					t.Fatalf("SaveContent() error = %v", err)
				}
			}

			if err := db.SaveRelevanceRanked("https://en.wikipedia.org/wiki/Dog", "Dog", "<a>Wolf</a>"); err != nil {
				t.Fatalf("SaveRelevanceRanked() error = %v", err)
			}

			ranked, err := db.GetRelevanceRanked("Dog")
			if err != nil {
				t.Fatalf("GetRelevanceRanked() error = %v", err)
			}
			if ranked != "<a>Wolf</a>" {
				t.Errorf("GetRelevanceRanked() = %q, want %q", ranked, "<a>Wolf</a>")
			}

			content, err := db.GetContent("Dog")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GetContent() error = %v, want %v", err, tt.wantErr)
			}
			if content != tt.wantContent {
				t.Errorf("GetContent() = %q, want %q", content, tt.wantContent)
			}
		})
	}
}

func TestEmptyRankingIsStored(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveContent("https://en.wikipedia.org/wiki/Stub", "Stub", "<p>stub</p>", ""); err != nil {
		t.Fatalf("SaveContent() error = %v", err)
	}
	if _, err := db.GetRelevanceRanked("Stub"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetRelevanceRanked() before ranking error = %v, want ErrNotFound", err)
	}

	if err := db.SaveRelevanceRanked("https://en.wikipedia.org/wiki/Stub", "Stub", ""); err != nil {
		t.Fatalf("SaveRelevanceRanked() error = %v", err)
	}
	ranked, err := db.GetRelevanceRanked("Stub")
	if err != nil {
		t.Fatalf("GetRelevanceRanked() after empty ranking error = %v", err)
	}
	if ranked != "" {
		t.Errorf("GetRelevanceRanked() = %q, want empty", ranked)
	}
}

func TestInternalLinks(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveContent("https://en.wikipedia.org/wiki/Cat", "Cat", "<p>cat</p>", ""); err != nil {
		t.Fatalf("SaveContent() error = %v", err)
	}

	first := []string{"/wiki/Felidae", "/wiki/Lion", "/wiki/Tiger"}
	if err := db.SaveInternalLinks("Cat", first); err != nil {
		t.Fatalf("SaveInternalLinks() error = %v", err)
	}
	got, err := db.GetInternalLinks("Cat")
	if err != nil {
		t.Fatalf("GetInternalLinks() error = %v", err)
	}
	if diff := cmp.Diff(first, got); diff != "" {
		t.Errorf("GetInternalLinks() mismatch (-want +got):\n%s", diff)
	}

	second := []string{"/wiki/Kitten"}
	if err := db.SaveInternalLinks("Cat", second); err != nil {
		t.Fatalf("SaveInternalLinks() replace error = %v", err)
	}
	got, _ = db.GetInternalLinks("Cat")
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("GetInternalLinks() after replace mismatch (-want +got):\n%s", diff)
	}
}

func TestGetPageListAndDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveContent("https://en.wikipedia.org/wiki/Cat", "Cat", "<p>cat</p>", "en"); err != nil {
		t.Fatalf("SaveContent() error = %v", err)
	}
	if err := db.SaveInternalLinks("Cat", []string{"/wiki/Lion"}); err != nil {
		t.Fatalf("SaveInternalLinks() error = %v", err)
	}
	if err := db.SaveContent("https://en.wikipedia.org/wiki/Dog", "Dog", "<p>dog</p>", "en"); err != nil {
		t.Fatalf("SaveContent() error = %v", err)
	}

	page, err := db.GetPage("Cat")
	if err != nil {
		t.Fatalf("GetPage() error = %v", err)
	}
	if page.Language != "en" || page.Content != "<p>cat</p>" {
		t.Errorf("GetPage() = %+v, want language en and cat content", page)
	}
	if diff := cmp.Diff([]string{"/wiki/Lion"}, page.InternalLinks); diff != "" {
		t.Errorf("GetPage() links mismatch (-want +got):\n%s", diff)
	}

	pages, err := db.ListPages(10)
	if err != nil {
		t.Fatalf("ListPages() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("ListPages() returned %d pages, want 2", len(pages))
	}

	if err := db.DeletePage("Cat"); err != nil {
		t.Fatalf("DeletePage() error = %v", err)
	}
	if _, err := db.GetPage("Cat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPage() after delete error = %v, want ErrNotFound", err)
	}
	links, err := db.GetInternalLinks("Cat")
	if err != nil {
		t.Fatalf("GetInternalLinks() error = %v", err)
	}
	if len(links) != 0 {
		t.Errorf("GetInternalLinks() after delete = %v, want none", links)
	}
	if err := db.DeletePage("Cat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeletePage() twice error = %v, want ErrNotFound", err)
	}
}
