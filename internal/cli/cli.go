// Package cli wires the extraction, translation, and vocabulary
// commands together.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ident-translator/internal/blacklist"
	"ident-translator/internal/cache"
	"ident-translator/internal/config"
	"ident-translator/internal/extract"
	"ident-translator/internal/filewalker"
	"ident-translator/internal/lang"
	"ident-translator/internal/llm"
	"ident-translator/internal/resolve"
	"ident-translator/internal/session"
	"ident-translator/internal/store"
	"ident-translator/internal/vocab"
	"ident-translator/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "ident-translator",
		Short: "Extracts identifiers from source code and maintains a translation vocabulary",
		Long:  "Scans source files for identifier tokens, decomposes them into sub-words, translates new tokens via an LLM provider, and resolves on-screen tokens against the vocabulary.",
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(translateCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(mergeCmd())
	rootCmd.AddCommand(dedupeCmd())
	rootCmd.AddCommand(clearCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <path>",
		Short: "Scan source files and list tokens not yet in the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args[0])
		},
	}
}

func translateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <path>",
		Short: "Extract new tokens, translate them in batches, and update the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(args[0])
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <token>",
		Short: "Look up the translated rendering of a single token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0])
		},
	}
}

func mergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <vocabulary-file>",
		Short: "Merge another vocabulary file into the active vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asSeed, _ := cmd.Flags().GetBool("seed")
			return runMerge(args[0], asSeed)
		},
	}
	cmd.Flags().Bool("seed", false, "Seed mode: only fill currently-empty translations")
	return cmd
}

func dedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe",
		Short: "Remove case-insensitive duplicate entries from the vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDedupe()
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the vocabulary to the seed term set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear()
		},
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// extractFromPath walks the path and runs extraction per file on the
// worker pool, merging results into one ordered set deduplicated
// against the vocabulary.
func extractFromPath(ctx context.Context, cfg *config.Config, path string, v *vocab.Vocabulary) ([]string, error) {
	bl := blacklist.Load(cfg.BlacklistFile)

	w := filewalker.NewWalker()
	entries, err := w.Walk(path)
	if err != nil {
		return nil, fmt.Errorf("walk input path: %w", err)
	}

	scanPool := worker.NewPool[filewalker.FileEntry, *extract.Result](cfg.WorkerCount,
		func(ctx context.Context, entry filewalker.FileEntry) (*extract.Result, error) {
			raw, err := os.ReadFile(entry.Path)
			if err != nil {
				return nil, fmt.Errorf("read source file: %w", err)
			}
			return extract.Extract(string(raw), extract.Options{
				Blacklist: bl,
				Keywords:  lang.KeywordSet(entry.Lang.Name),
			}), nil
		},
	)
	scanResults := scanPool.Execute(ctx, entries)

	// Merge per-file results serially, preserving first-seen order.
	seen := make(map[string]struct{})
	var merged []string
	for _, sr := range scanResults {
		if sr.Err != nil {
			log.Error().Err(sr.Err).Str("file", sr.Input.Path).Msg("Scan failed")
			continue
		}
		if sr.Result == nil {
			continue
		}
		for _, token := range sr.Result.NewIdentifiers {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			merged = append(merged, token)
		}
	}

	existing := vocab.MarkExisting(v, merged)
	fresh := merged[:0:0]
	for _, token := range merged {
		if !existing[token] {
			fresh = append(fresh, token)
		}
	}

	log.Info().
		Int("files", len(entries)).
		Int("candidates", len(merged)).
		Int("new", len(fresh)).
		Msg("Extraction complete")

	return fresh, nil
}

func runExtract(path string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	v := store.Load(cfg.VocabDir, cfg.TargetLang)

	fresh, err := extractFromPath(ctx, cfg, path, v)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(extract.Result{NewIdentifiers: fresh}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runTranslate(path string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	v := store.Load(cfg.VocabDir, cfg.TargetLang)

	fresh, err := extractFromPath(ctx, cfg, path, v)
	if err != nil {
		return err
	}
	if len(fresh) == 0 {
		log.Info().Msg("Nothing new to translate")
		return nil
	}

	translationCache, closePool, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePool()

	client := llm.NewClient(cfg.GeminiAPIKey, cfg.TranslationModel)
	client.SetReferenceTerms(referenceTerms(v))

	sess := session.New(cfg.TargetLang, v, client, translationCache, cfg.BatchSize)
	defer sess.Close()

	sess.Stage(fresh)
	merged, err := sess.TranslatePending(ctx)
	if err != nil {
		log.Warn().Err(err).Int("merged", merged).Msg("Translation interrupted, saving partial results")
	}

	if saveErr := store.Save(cfg.VocabDir, cfg.TargetLang, v); saveErr != nil {
		return saveErr
	}

	log.Info().Int("translated", merged).Msg("Translation complete")
	return err
}

func runResolve(token string) error {
	cfg := config.Load()
	v := store.Load(cfg.VocabDir, cfg.TargetLang)

	translated, ok := resolve.Resolve(v, token)
	if !ok {
		fmt.Println("no translation available")
		return nil
	}
	fmt.Println(translated)
	return nil
}

func runMerge(filePath string, asSeed bool) error {
	cfg := config.Load()
	v := store.Load(cfg.VocabDir, cfg.TargetLang)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read vocabulary file: %w", err)
	}
	var src vocab.Vocabulary
	if err := json.Unmarshal(raw, &src); err != nil {
		return fmt.Errorf("parse vocabulary file: %w", err)
	}

	vocab.Merge(v, &src, cfg.TargetLang, asSeed)
	return store.Save(cfg.VocabDir, cfg.TargetLang, v)
}

func runDedupe() error {
	cfg := config.Load()
	v := store.Load(cfg.VocabDir, cfg.TargetLang)

	removed := vocab.Dedupe(v)
	fmt.Printf("removed %d duplicate entries\n", len(removed))
	return store.Save(cfg.VocabDir, cfg.TargetLang, v)
}

func runClear() error {
	cfg := config.Load()
	v := store.Load(cfg.VocabDir, cfg.TargetLang)

	vocab.Clear(v)
	return store.Save(cfg.VocabDir, cfg.TargetLang, v)
}

// openCache connects the shared translation cache when DATABASE_URL is
// configured; otherwise the cache runs memory-only.
func openCache(ctx context.Context, cfg *config.Config) (*cache.TranslationCache, func(), error) {
	if cfg.DatabaseURL == "" {
		return cache.New(nil), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")

	c := cache.New(pool)
	if err := c.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	if err := c.Preload(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to preload cache")
	}

	return c, pool.Close, nil
}

// referenceTerms collects confirmed translations quoted in prompts,
// capped to keep the prompt small.
func referenceTerms(v *vocab.Vocabulary) map[string]string {
	const maxTerms = 50
	terms := make(map[string]string)
	for _, e := range v.Entries {
		if e.Translated == "" || e.Translated == e.Original {
			continue
		}
		terms[e.Original] = e.Translated
		if len(terms) >= maxTerms {
			break
		}
	}
	return terms
}
