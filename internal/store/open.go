// Package store resolves a DSN into a reservation store. The default DSN
// "memory" yields the process-local store; a sqlite URL or path yields the
// relational store, which both binaries share.
package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarkoPoloResearchLab/hotel/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/hotel/internal/store/memstore"
	"github.com/MarkoPoloResearchLab/hotel/pkg/hotel"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// DSNMemory selects the in-memory store.
const DSNMemory = "memory"

// Open resolves the DSN and returns a ready store plus a cleanup function.
func Open(ctx context.Context, dsn string) (hotel.Store, func() error, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" || trimmed == DSNMemory {
		return memstore.New(), func() error { return nil }, nil
	}
	sqlitePath, err := resolveSQLitePath(trimmed)
	if err != nil {
		return nil, nil, err
	}
	db, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&gormstore.Reservation{}); err != nil {
		return nil, nil, fmt.Errorf("auto migrate: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error { return sqlDB.Close() }
	return gormstore.New(db.WithContext(ctx)), cleanup, nil
}

func resolveSQLitePath(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "sqlite://") {
		parsed, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse sqlite url: %w", err)
		}
		path := parsed.Path
		if path == "" {
			path = parsed.Host
		}
		if path == "" || path == "/" {
			path = "hotel.db"
		}
		return normalizeSQLitePath(path)
	}
	// Treat everything else as a direct sqlite path.
	return normalizeSQLitePath(dsn)
}

func normalizeSQLitePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	if strings.HasPrefix(path, "/") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		return path, nil
	}
	abs := filepath.Join(".", path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	return abs, nil
}
