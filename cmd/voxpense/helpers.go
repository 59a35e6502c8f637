package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/voxpense/voxpense/internal/common"
	"github.com/voxpense/voxpense/internal/parser"
	"github.com/voxpense/voxpense/internal/storage"
)

// newParser constructs the shared parser with the built-in tables.
func newParser() *parser.Parser {
	return parser.New()
}

// defaultCurrency resolves the configured fallback currency and verifies it
// against the parser's registry.
func defaultCurrency(p *parser.Parser) (string, error) {
	code := strings.ToUpper(viper.GetString("currency.default"))
	if code == "" {
		return "", fmt.Errorf("currency.default is not set: %w", common.ErrMissingConfig)
	}
	if !p.Registry().IsValid(code) {
		return "", fmt.Errorf("unsupported default currency %q: %w", code, common.ErrInvalidConfig)
	}
	return code, nil
}

// initStorage opens the configured SQLite database and applies migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return store, nil
}
