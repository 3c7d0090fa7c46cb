package odataclient

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestCache(t *testing.T) (*MetadataCache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	cache, err := NewMetadataCache(db)
	if err != nil {
		t.Fatalf("Failed to create metadata cache: %v", err)
	}
	return cache, path
}

func TestMetadataCacheStoreLoad(t *testing.T) {
	cache, _ := newTestCache(t)

	if doc, err := cache.Load("https://example.org/odata"); err != nil || doc != nil {
		t.Fatalf("Expected a clean miss for an unknown service, got %v, %v", doc, err)
	}

	first := []byte(`{"metadataVersion":"1.0","structuralTypeMap":{}}`)
	if err := cache.Store("https://example.org/odata", first); err != nil {
		t.Fatalf("Failed to store document: %v", err)
	}
	loaded, err := cache.Load("https://example.org/odata")
	if err != nil {
		t.Fatalf("Failed to load document: %v", err)
	}
	if !bytes.Equal(loaded, first) {
		t.Errorf("Loaded document differs from stored one")
	}

	// Storing again replaces the row.
	second := []byte(`{"metadataVersion":"1.0","structuralTypeMap":{},"dataServices":[]}`)
	if err := cache.Store("https://example.org/odata/", second); err != nil {
		t.Fatalf("Failed to replace document: %v", err)
	}
	loaded, err = cache.Load("https://example.org/odata")
	if err != nil {
		t.Fatalf("Failed to load replaced document: %v", err)
	}
	if !bytes.Equal(loaded, second) {
		t.Errorf("Expected the replaced document, got %s", loaded)
	}

	if err := cache.Invalidate("https://example.org/odata"); err != nil {
		t.Fatalf("Failed to invalidate: %v", err)
	}
	if doc, err := cache.Load("https://example.org/odata"); err != nil || doc != nil {
		t.Errorf("Expected a miss after invalidation, got %v, %v", doc, err)
	}
	if err := cache.Invalidate("https://example.org/odata"); err != nil {
		t.Errorf("Invalidating an absent entry must not fail: %v", err)
	}
}

func TestMetadataCacheDetectsCorruption(t *testing.T) {
	cache, path := newTestCache(t)
	if err := cache.Store("https://example.org/odata", []byte(`{"metadataVersion":"1.0"}`)); err != nil {
		t.Fatalf("Failed to store document: %v", err)
	}

	// Flip the stored bytes underneath the cache.
	raw, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open raw connection: %v", err)
	}
	defer raw.Close()
	if _, err := raw.Exec(`UPDATE cached_metadata SET document = X'DEADBEEF'`); err != nil {
		t.Fatalf("Failed to corrupt row: %v", err)
	}

	_, err = cache.Load("https://example.org/odata")
	if err == nil || !strings.Contains(err.Error(), "corrupt") {
		t.Fatalf("Expected a corruption error, got %v", err)
	}
}

func TestFetchMetadataServesFromCache(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(northwindMetadata)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	cache, _ := newTestCache(t)

	first, err := NewMetadataStoreWithConfig(StoreConfig{Cache: cache})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	ds, err := NewDataService(DataServiceConfig{ServiceName: server.URL})
	if err != nil {
		t.Fatalf("Failed to create data service: %v", err)
	}
	if err := first.FetchMetadata(context.Background(), ds); err != nil {
		t.Fatalf("Failed to fetch metadata: %v", err)
	}
	if got := requests.Load(); got != 1 {
		t.Fatalf("Expected one request, got %d", got)
	}

	// A fresh store with the same cache never reaches the service.
	second, err := NewMetadataStoreWithConfig(StoreConfig{Cache: cache})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := second.FetchMetadata(context.Background(), ds); err != nil {
		t.Fatalf("Failed to fetch from cache: %v", err)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("Expected the cache to serve the second fetch, got %d requests", got)
	}
	if len(second.EntityTypes()) != 2 {
		t.Errorf("Expected 2 entity types from the cache, got %d", len(second.EntityTypes()))
	}
	if !second.HasMetadataFor(server.URL) {
		t.Error("Cache-served service must count as fetched")
	}
}
