package caching

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := c.Get("https://en.wikipedia.org/wiki/Cat"); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}
	if err := c.Set("https://en.wikipedia.org/wiki/Cat", []byte("<p>cat</p>")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok := c.Get("https://en.wikipedia.org/wiki/Cat")
	if !ok || string(data) != "<p>cat</p>" {
		t.Fatalf("Get() = %q, %v; want cached body", data, ok)
	}

	if err := c.Invalidate("https://en.wikipedia.org/wiki/Cat"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if _, ok := c.Get("https://en.wikipedia.org/wiki/Cat"); ok {
		t.Error("Get() after Invalidate() reported a hit")
	}
	if err := c.Invalidate("https://en.wikipedia.org/wiki/Cat"); err != nil {
		t.Errorf("Invalidate() of missing entry error = %v", err)
	}
}

func TestCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir, time.Minute)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if err := c.Set("u", []byte("x")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	old := time.Now().Add(-2 * time.Minute)
	if err := os.Chtimes(filepath.Join(dir, c.key("u")), old, old); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}
	if _, ok := c.Get("u"); ok {
		t.Error("Get() returned an expired entry")
	}
}
