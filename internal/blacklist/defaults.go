package blacklist

// Built-in blacklist data used when no file is configured or the file
// cannot be read. User files fully replace these sets, they do not merge.

var defaultTechnicalTerms = []string{
	"http", "https", "www", "url", "uri", "api", "json", "xml", "html",
	"css", "sql", "ascii", "utf", "uuid", "guid", "ip", "tcp", "udp",
	"dns", "ssl", "tls", "ssh", "ftp", "cpu", "gpu", "ram", "io",
	"os", "db", "sdk", "cli", "gui", "ui", "px", "rgb", "rgba", "hex",
	"src", "dst", "env", "config", "cfg", "lib", "pkg", "bin", "exe",
	"regex", "regexp", "bool", "boolean", "enum", "struct", "null", "nil",
}

var defaultIgnoreList = []string{
	"self", "cls", "this", "args", "kwargs", "arg", "params", "param",
	"id", "idx", "val", "vals", "ret", "res", "err", "obj", "ptr",
	"buf", "len", "num", "cnt", "tmp", "temp", "foo", "bar", "baz",
	"str", "int", "float", "char", "byte", "dict", "list", "tuple",
	"fn", "func", "vec", "arr", "elem", "iter", "ctx",
}

var defaultMeaningfulShortWords = []string{
	"add", "get", "set", "put", "pop", "run", "end", "top", "map",
	"key", "sum", "max", "min", "new", "old", "row", "col", "day",
	"way", "use", "try", "cut", "fix", "log", "tag", "job", "box",
	"is", "has", "to", "by", "on", "of", "at", "up", "do", "go",
}

var defaultPythonKeywords = []string{
	"def", "class", "if", "else", "elif", "for", "while", "return",
	"import", "from", "try", "except", "finally", "with", "as", "pass",
	"break", "continue", "lambda", "yield", "global", "nonlocal",
	"assert", "raise", "del", "not", "and", "or", "in", "is", "async",
	"await", "none", "true", "false",
}

// Default returns the built-in blacklist data.
func Default() *Data {
	return fromShape(fileShape{
		TechnicalTerms:       defaultTechnicalTerms,
		IgnoreList:           defaultIgnoreList,
		MeaningfulShortWords: defaultMeaningfulShortWords,
		PythonKeywords:       defaultPythonKeywords,
	})
}
