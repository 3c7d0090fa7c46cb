// Command metafetch fetches the metadata document of an OData service,
// prints the exported client-side metadata as JSON, and optionally primes an
// offline cache database so applications can start without a network
// round-trip.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	odataclient "github.com/nlstn/go-odata-client"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	service := flag.String("service", "", "service root URL, e.g. https://example.com/api/northwind")
	out := flag.String("out", "", "write the exported metadata document to this file instead of stdout")
	cacheDriver := flag.String("cache-driver", "sqlite", "cache database driver: sqlite or postgres")
	cacheDSN := flag.String("cache-dsn", "", "cache database DSN; empty disables caching")
	camelCase := flag.Bool("camel-case", false, "apply the camelCase naming convention to property names")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *service == "" {
		fmt.Fprintln(os.Stderr, "metafetch: -service is required")
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*service, *out, *cacheDriver, *cacheDSN, *camelCase, *timeout, logger); err != nil {
		logger.Error("metafetch failed", "error", err)
		os.Exit(1)
	}
}

func run(service, out, cacheDriver, cacheDSN string, camelCase bool, timeout time.Duration, logger *slog.Logger) error {
	cfg := odataclient.StoreConfig{Logger: logger}
	if camelCase {
		cfg.NamingConvention = odataclient.NamingConventionCamelCase
	}

	if cacheDSN != "" {
		db, err := openCacheDB(cacheDriver, cacheDSN)
		if err != nil {
			return fmt.Errorf("failed to open cache database: %w", err)
		}
		cache, err := odataclient.NewMetadataCache(db)
		if err != nil {
			return err
		}
		cache.SetLogger(logger)
		cfg.Cache = cache
	}

	store, err := odataclient.NewMetadataStoreWithConfig(cfg)
	if err != nil {
		return err
	}

	ds, err := odataclient.NewDataService(odataclient.DataServiceConfig{ServiceName: service})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := store.FetchMetadata(ctx, ds); err != nil {
		return err
	}
	logger.Info("Fetched metadata",
		"service", ds.ServiceName(),
		"entityTypes", len(store.EntityTypes()),
		"complexTypes", len(store.ComplexTypes()))

	doc, err := store.ExportMetadata()
	if err != nil {
		return err
	}
	if out == "" {
		_, err = os.Stdout.Write(append(doc, '\n'))
		return err
	}
	return os.WriteFile(out, doc, 0o644)
}

func openCacheDB(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown cache driver %q", driver)
	}
}
