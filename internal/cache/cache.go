// Package cache provides an in-memory translation cache with optional
// PostgreSQL persistence behind it, shared across extraction sessions.
package cache

import (
	"context"
	"fmt"
	"sync"

	"ident-translator/internal/textutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS translation_cache (
	hash       TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	translated TEXT NOT NULL
)`

// TranslationCache maps token text (by hash) to translated text.
// A nil pool degrades to memory-only operation.
type TranslationCache struct {
	pool   *pgxpool.Pool
	mu     sync.RWMutex
	memory map[string]string // hash -> translated text
}

// New creates a cache. pool may be nil for memory-only use.
func New(pool *pgxpool.Pool) *TranslationCache {
	return &TranslationCache{
		pool:   pool,
		memory: make(map[string]string),
	}
}

// EnsureSchema creates the backing table when Postgres is configured.
func (c *TranslationCache) EnsureSchema(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}
	if _, err := c.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure cache schema: %w", err)
	}
	return nil
}

// Get retrieves a cached translation. Returns false if not found.
func (c *TranslationCache) Get(ctx context.Context, sourceText string) (string, bool) {
	hash := textutil.Hash(sourceText)

	c.mu.RLock()
	if v, ok := c.memory[hash]; ok {
		c.mu.RUnlock()
		return v, true
	}
	c.mu.RUnlock()

	if c.pool == nil {
		return "", false
	}

	var translated string
	err := c.pool.QueryRow(ctx,
		`SELECT translated FROM translation_cache WHERE hash = $1`, hash,
	).Scan(&translated)
	if err != nil {
		return "", false
	}

	c.mu.Lock()
	c.memory[hash] = translated
	c.mu.Unlock()

	return translated, true
}

// Set stores a translation in memory and, when configured, Postgres.
func (c *TranslationCache) Set(ctx context.Context, sourceText, translated string) error {
	hash := textutil.Hash(sourceText)

	c.mu.Lock()
	c.memory[hash] = translated
	c.mu.Unlock()

	if c.pool == nil {
		return nil
	}

	_, err := c.pool.Exec(ctx, `
		INSERT INTO translation_cache (hash, source, translated)
		VALUES ($1, $2, $3)
		ON CONFLICT (hash) DO UPDATE SET translated = EXCLUDED.translated`,
		hash, sourceText, translated)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Preload loads all persisted translations into memory.
func (c *TranslationCache) Preload(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}

	rows, err := c.pool.Query(ctx, `SELECT hash, translated FROM translation_cache`)
	if err != nil {
		return fmt.Errorf("preload cache: %w", err)
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for rows.Next() {
		var hash, translated string
		if err := rows.Scan(&hash, &translated); err != nil {
			return fmt.Errorf("scan cache row: %w", err)
		}
		c.memory[hash] = translated
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate cache rows: %w", err)
	}

	log.Info().Int("count", count).Msg("Preloaded translation cache")
	return nil
}
