package tokenize

// Kind tags a token with its provenance.
type Kind string

const (
	// KindOriginal marks a token matched directly by the identifier scan.
	KindOriginal Kind = "original"
	// KindSplit marks a token produced by decomposition.
	KindSplit Kind = "split"
)

// TokenMap is an insertion-ordered mapping from exact token string to
// provenance kind. Uniqueness is case-sensitive. Insertion uses
// first-write-wins semantics: a token reached by both the scanner and
// the decomposer keeps the kind it was first recorded with.
type TokenMap struct {
	order []string
	kinds map[string]Kind
}

// NewTokenMap creates an empty token map.
func NewTokenMap() *TokenMap {
	return &TokenMap{kinds: make(map[string]Kind)}
}

// InsertIfAbsent records the token with the given kind unless it is
// already present. Returns true if the token was inserted.
func (m *TokenMap) InsertIfAbsent(token string, kind Kind) bool {
	if _, exists := m.kinds[token]; exists {
		return false
	}
	m.kinds[token] = kind
	m.order = append(m.order, token)
	return true
}

// Has reports whether the exact token is present.
func (m *TokenMap) Has(token string) bool {
	_, ok := m.kinds[token]
	return ok
}

// Kind returns the provenance kind for the token, or "" if absent.
func (m *TokenMap) Kind(token string) Kind {
	return m.kinds[token]
}

// Tokens returns all tokens in first-encountered order.
func (m *TokenMap) Tokens() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of distinct tokens.
func (m *TokenMap) Len() int {
	return len(m.order)
}
