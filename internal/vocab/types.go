// Package vocab defines the translation vocabulary: an ordered
// collection of entries with provenance, lookup via the escalating match
// strategies, and merge-without-loss semantics across sources.
package vocab

// Entry types.
const (
	TypeIdentifier = "identifier"
	TypeComment    = "comment"
)

// Entry sources (provenance).
const (
	SourceSystem = "system"
	SourceUser   = "user"
	SourceLLM    = "llm"
)

// Entry maps one original term to its translation.
// Original is unique per Type under exact-match semantics; duplicate
// casings are tolerated at insertion time and resolved by matcher
// priority at lookup time.
type Entry struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Type       string `json:"type"`
	Source     string `json:"source"`
}

// Meta carries vocabulary file metadata.
type Meta struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Vocabulary is the persistent term mapping for one target language.
// Entry order is append-only: merges and updates never reorder.
type Vocabulary struct {
	TargetLanguage string  `json:"target_language"`
	Meta           Meta    `json:"meta"`
	Entries        []Entry `json:"entries"`
}

// TempVocabulary is the ephemeral, session-scoped staging set of tokens
// pending translation.
type TempVocabulary struct {
	NewIdentifiers []string `json:"new_identifiers"`
}

// Add stages a token unless it is already pending.
func (t *TempVocabulary) Add(token string) bool {
	for _, existing := range t.NewIdentifiers {
		if existing == token {
			return false
		}
	}
	t.NewIdentifiers = append(t.NewIdentifiers, token)
	return true
}

// Clear empties the staging set.
func (t *TempVocabulary) Clear() {
	t.NewIdentifiers = nil
}
