// Package session owns the mutable state of one translation session:
// the active vocabulary, the staging set of pending tokens, the shared
// translation cache, and the translation provider. State is explicit
// and lifecycle-managed rather than global.
package session

import (
	"context"

	"ident-translator/internal/cache"
	"ident-translator/internal/textutil"
	"ident-translator/internal/vocab"
	"ident-translator/internal/worker"

	"github.com/rs/zerolog/log"
)

// Pair is one translated token.
type Pair struct {
	Original   string
	Translated string
}

// Provider turns a batch of tokens into translations. Implementations
// own their timeout semantics; the session treats provider errors as
// recoverable and degrades to identity translation.
type Provider interface {
	TranslateBatch(ctx context.Context, targetLang string, tokens []string) ([]Pair, error)
}

// Session is owned by a single active caller; it performs no internal
// locking and batches must not overlap.
type Session struct {
	Lang    string
	Vocab   *vocab.Vocabulary
	Pending *vocab.TempVocabulary

	provider  Provider
	cache     *cache.TranslationCache
	batchSize int
}

// New creates a session. cache may be nil.
func New(lang string, v *vocab.Vocabulary, provider Provider, c *cache.TranslationCache, batchSize int) *Session {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Session{
		Lang:      lang,
		Vocab:     v,
		Pending:   &vocab.TempVocabulary{},
		provider:  provider,
		cache:     c,
		batchSize: batchSize,
	}
}

// Stage adds tokens to the pending set, skipping duplicates.
func (s *Session) Stage(tokens []string) int {
	added := 0
	for _, t := range tokens {
		if s.Pending.Add(t) {
			added++
		}
	}
	return added
}

// ClearPending drops all staged tokens without translating them.
func (s *Session) ClearPending() {
	s.Pending.Clear()
}

// Close releases session state. The vocabulary itself is owned by the
// caller and survives.
func (s *Session) Close() {
	s.Pending.Clear()
	s.provider = nil
}

// TranslatePending translates the staged tokens in serial batches: one
// batch completes, including its provider round-trip and vocabulary
// merge, before the next begins. Cancellation is cooperative and
// checked between batches; results of completed batches are retained.
// Tokens a batch could not translate fall back to single-item retry,
// then to identity translation. Returns the number of tokens merged.
func (s *Session) TranslatePending(ctx context.Context) (int, error) {
	pending := s.Pending.NewIdentifiers
	if len(pending) == 0 {
		return 0, nil
	}

	batches := worker.Batch(pending, s.batchSize)
	merged := 0
	consumed := 0

	for i, batch := range batches {
		select {
		case <-ctx.Done():
			s.Pending.NewIdentifiers = pending[consumed:]
			log.Warn().
				Int("completed_batches", i).
				Int("remaining", len(pending)-consumed).
				Msg("Translation cancelled between batches")
			return merged, ctx.Err()
		default:
		}

		results := s.translateBatch(ctx, batch)
		merged += vocab.MergeTranslatedItems(s.Vocab, results, vocab.TypeIdentifier, vocab.SourceLLM)
		consumed += len(batch)

		log.Info().
			Int("batch", i+1).
			Int("total_batches", len(batches)).
			Int("size", len(batch)).
			Msg("Batch translated")
	}

	s.Pending.NewIdentifiers = nil
	return merged, nil
}

// translateBatch resolves one batch: cache first, then the provider,
// then per-item retry, then identity fallback. Always returns a
// translation for every token in the batch.
func (s *Session) translateBatch(ctx context.Context, batch []string) map[string]string {
	results := make(map[string]string, len(batch))

	var misses []string
	for _, token := range batch {
		if s.cache != nil {
			if translated, ok := s.cache.Get(ctx, token); ok {
				results[token] = translated
				continue
			}
		}
		misses = append(misses, token)
	}

	if len(misses) > 0 {
		pairs, err := s.provider.TranslateBatch(ctx, s.Lang, misses)
		if err != nil {
			log.Error().Err(err).Int("size", len(misses)).Msg("Batch translation failed, retrying items")
		}
		got := make(map[string]string, len(pairs))
		for _, p := range pairs {
			if p.Translated != "" {
				got[p.Original] = p.Translated
			}
		}

		for _, token := range misses {
			translated, ok := got[token]
			if !ok {
				translated = s.translateSingle(ctx, token)
			}
			results[token] = translated
			if s.cache != nil && translated != token {
				if err := s.cache.Set(ctx, token, translated); err != nil {
					log.Warn().Err(err).Str("token", textutil.Truncate(token, 30)).Msg("Failed to cache translation")
				}
			}
		}
	}

	return results
}

// translateSingle retries one token, degrading to identity translation
// so a provider failure never aborts the pipeline.
func (s *Session) translateSingle(ctx context.Context, token string) string {
	pairs, err := s.provider.TranslateBatch(ctx, s.Lang, []string{token})
	if err == nil && len(pairs) > 0 && pairs[0].Translated != "" {
		return pairs[0].Translated
	}
	if err != nil {
		log.Warn().Err(err).Str("token", textutil.Truncate(token, 30)).Msg("Single translation failed, using identity fallback")
	}
	return token
}
