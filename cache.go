package odataclient

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CachedMetadata is the persistence model for one cached metadata document,
// keyed by normalized service name and checksummed so that storage corruption
// surfaces as a load error instead of a broken import.
type CachedMetadata struct {
	ID          uint   `gorm:"primarykey"`
	ServiceName string `gorm:"uniqueIndex;size:512"`
	Document    []byte
	Checksum    string `gorm:"size:16"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

// MetadataCache is a database-backed offline store for exported metadata
// documents. A store configured with a cache serves FetchMetadata from it
// when possible and primes it after successful fetches, giving clients a
// working type graph without a round-trip to the service.
type MetadataCache struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewMetadataCache creates a cache on the given database connection and
// migrates its table.
func NewMetadataCache(db *gorm.DB) (*MetadataCache, error) {
	if db == nil {
		return nil, &ConfigurationError{Message: "metadata cache requires a database connection"}
	}
	if err := db.AutoMigrate(&CachedMetadata{}); err != nil {
		return nil, fmt.Errorf("failed to migrate metadata cache schema: %w", err)
	}
	return &MetadataCache{db: db, logger: slog.Default()}, nil
}

// SetLogger sets a custom logger for the cache. If logger is nil,
// slog.Default() is used.
func (c *MetadataCache) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	c.logger = logger
}

func documentChecksum(doc []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(doc))
}

// Store upserts the document for a service name.
func (c *MetadataCache) Store(serviceName string, doc []byte) error {
	row := CachedMetadata{
		ServiceName: NormalizeServiceName(serviceName),
		Document:    doc,
		Checksum:    documentChecksum(doc),
	}
	err := c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "checksum", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to cache metadata for %s: %w", row.ServiceName, err)
	}
	c.logger.Debug("Cached metadata document",
		"service", row.ServiceName, "bytes", len(doc), "checksum", row.Checksum)
	return nil
}

// Load returns the cached document for a service name, nil when the cache has
// none. A checksum mismatch reports an error and the row should be considered
// lost; callers fall back to a live fetch.
func (c *MetadataCache) Load(serviceName string) ([]byte, error) {
	normalized := NormalizeServiceName(serviceName)
	var row CachedMetadata
	err := c.db.Where("service_name = ?", normalized).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cached metadata for %s: %w", normalized, err)
	}
	if got := documentChecksum(row.Document); got != row.Checksum {
		return nil, fmt.Errorf("cached metadata for %s is corrupt: checksum %s, expected %s",
			normalized, got, row.Checksum)
	}
	return row.Document, nil
}

// Invalidate removes the cached document for a service name. Removing an
// absent entry is not an error.
func (c *MetadataCache) Invalidate(serviceName string) error {
	normalized := NormalizeServiceName(serviceName)
	if err := c.db.Where("service_name = ?", normalized).Delete(&CachedMetadata{}).Error; err != nil {
		return fmt.Errorf("failed to invalidate cached metadata for %s: %w", normalized, err)
	}
	return nil
}
