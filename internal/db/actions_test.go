package db

import (
	"errors"
	"testing"
	"time"

	"github.com/dtnitsch/wikilens/pkg/caching"
	dbpkg "github.com/dtnitsch/wikilens/pkg/db"
)

func TestDropPage(t *testing.T) {
	const link = "https://en.wikipedia.org/wiki/Cat"

	tests := []struct {
		name      string
		withCache bool
	}{
		{name: "store and fetch cache", withCache: true},
		{name: "store only", withCache: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, err := dbpkg.Open(":memory:")
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer database.Close()

			if err := database.SaveContent(link, "Cat", "<p>cat</p>", "en"); err != nil {
				t.Fatalf("SaveContent() error = %v", err)
			}

			var cache *caching.Cache
			if tt.withCache {
				cache, err = caching.NewCache(t.TempDir(), time.Hour)
				if err != nil {
					t.Fatalf("NewCache() error = %v", err)
				}
				if err := cache.Set(link, []byte("<html>cat</html>")); err != nil {
					t.Fatalf("Set() error = %v", err)
				}
			}

			if err := dropPage(database, cache, "Cat"); err != nil {
				t.Fatalf("dropPage() error = %v", err)
			}

			if _, err := database.GetPage("Cat"); !errors.Is(err, dbpkg.ErrNotFound) {
				t.Errorf("GetPage() after drop error = %v, want ErrNotFound", err)
			}
			if cache != nil {
				if _, ok := cache.Get(link); ok {
					t.Error("fetch cache still holds the dropped page")
				}
			}
		})
	}
}

func TestDropPageMissing(t *testing.T) {
	database, err := dbpkg.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer database.Close()

	cache, err := caching.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if err := dropPage(database, cache, "Nowhere"); !errors.Is(err, dbpkg.ErrNotFound) {
		t.Fatalf("dropPage() error = %v, want ErrNotFound", err)
	}
}
