// Package lang registers the source languages whose files the extractor
// scans, with their file extensions and keyword sets. Keywords are
// recognized unconditionally by the prioritizer.
package lang

import "strings"

// Language describes one supported source language.
type Language struct {
	Name       string
	Extensions []string
	Keywords   []string
}

// Registry lists the supported source languages.
var Registry = []Language{
	{
		Name:       "python",
		Extensions: []string{".py", ".pyi"},
		Keywords: []string{
			"def", "class", "if", "else", "elif", "for", "while", "return",
			"import", "from", "try", "except", "finally", "with", "as",
			"pass", "break", "continue", "lambda", "yield", "global",
			"nonlocal", "assert", "raise", "del", "not", "and", "or",
			"in", "is", "async", "await",
		},
	},
	{
		Name:       "go",
		Extensions: []string{".go"},
		Keywords: []string{
			"func", "type", "struct", "interface", "package", "import",
			"return", "if", "else", "for", "range", "switch", "case",
			"default", "break", "continue", "go", "chan", "select",
			"defer", "map", "var", "const",
		},
	},
	{
		Name:       "javascript",
		Extensions: []string{".js", ".jsx", ".ts", ".tsx", ".mjs"},
		Keywords: []string{
			"function", "class", "if", "else", "for", "while", "return",
			"import", "export", "from", "try", "catch", "finally",
			"throw", "new", "delete", "typeof", "instanceof", "switch",
			"case", "default", "break", "continue", "const", "let",
			"var", "async", "await", "yield", "extends", "super",
		},
	},
}

// DetectByExt returns the language handling the given file extension.
func DetectByExt(ext string) (Language, bool) {
	ext = strings.ToLower(ext)
	for _, l := range Registry {
		for _, e := range l.Extensions {
			if e == ext {
				return l, true
			}
		}
	}
	return Language{}, false
}

// KeywordSet returns the keyword set for the named language, or the
// union of all registered languages when name is empty or unknown.
func KeywordSet(name string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, l := range Registry {
		if name != "" && l.Name != name {
			continue
		}
		for _, k := range l.Keywords {
			set[k] = struct{}{}
		}
	}
	if len(set) == 0 {
		return KeywordSet("")
	}
	return set
}

// SupportedExtensions returns the set of all registered file extensions.
func SupportedExtensions() map[string]bool {
	exts := make(map[string]bool)
	for _, l := range Registry {
		for _, e := range l.Extensions {
			exts[e] = true
		}
	}
	return exts
}
