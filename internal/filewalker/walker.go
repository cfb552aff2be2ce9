// Package filewalker discovers source files under a root directory and
// tags each with its detected source language.
package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ident-translator/internal/lang"

	"github.com/rs/zerolog/log"
)

// FileEntry is a discovered source file ready for scanning.
type FileEntry struct {
	Path string
	Ext  string
	Lang lang.Language
}

// Walker traverses directories collecting supported source files.
type Walker struct {
	supported map[string]bool
}

// NewWalker creates a Walker covering all registered languages.
func NewWalker() *Walker {
	return &Walker{supported: lang.SupportedExtensions()}
}

// Walk discovers supported files under root. A root that is itself a
// supported file yields a single entry.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		if entry, ok := w.entryFor(root); ok {
			return []FileEntry{entry}, nil
		}
		return nil, fmt.Errorf("unsupported file type: %s", root)
	}

	var entries []FileEntry
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if entry, ok := w.entryFor(path); ok {
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered source files")
	return entries, nil
}

func (w *Walker) entryFor(path string) (FileEntry, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if !w.supported[ext] {
		return FileEntry{}, false
	}
	l, ok := lang.DetectByExt(ext)
	if !ok {
		return FileEntry{}, false
	}
	return FileEntry{Path: path, Ext: ext, Lang: l}, true
}
