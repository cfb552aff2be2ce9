package vocab

import "github.com/rs/zerolog/log"

// Core term seeds per target language. Languages without a seed map get
// identity-free entries with empty translations, filled later by
// merge-as-seed from project or global vocabularies.
var seedTerms = []string{
	"function", "class", "if", "else", "return", "import", "for",
	"while", "break", "continue", "true", "false", "value", "name",
	"type", "data", "error", "result", "index", "count",
}

var seedTranslations = map[string]map[string]string{
	"zh-CN": {
		"function": "函数", "class": "类", "if": "如果", "else": "否则",
		"return": "返回", "import": "导入", "for": "循环", "while": "当",
		"break": "中断", "continue": "继续", "true": "真", "false": "假",
		"value": "值", "name": "名称", "type": "类型", "data": "数据",
		"error": "错误", "result": "结果", "index": "索引", "count": "计数",
	},
	"ja": {
		"function": "関数", "class": "クラス", "if": "もし", "else": "それ以外",
		"return": "戻る", "import": "インポート", "for": "繰り返し", "while": "間",
		"break": "中断", "continue": "継続", "true": "真", "false": "偽",
		"value": "値", "name": "名前", "type": "型", "data": "データ",
		"error": "エラー", "result": "結果", "index": "インデックス", "count": "数",
	},
}

// CreateDefault returns a fresh vocabulary for the target language,
// seeded with the core term set.
func CreateDefault(lang string) *Vocabulary {
	v := &Vocabulary{
		TargetLanguage: lang,
		Meta: Meta{
			Name:        "core vocabulary",
			Version:     "1.0",
			Description: "identifier translation vocabulary for " + lang,
		},
	}
	EnsureSeeded(v)
	return v
}

// EnsureSeeded appends the core seed entries when the vocabulary is
// empty. A vocabulary is never left with zero entries.
func EnsureSeeded(v *Vocabulary) {
	if len(v.Entries) > 0 {
		return
	}
	translations := seedTranslations[v.TargetLanguage]
	for _, term := range seedTerms {
		v.Entries = append(v.Entries, Entry{
			Original:   term,
			Translated: translations[term],
			Type:       TypeIdentifier,
			Source:     SourceSystem,
		})
	}
	log.Debug().Str("lang", v.TargetLanguage).Int("entries", len(v.Entries)).Msg("Seeded vocabulary")
}

// Clear empties the vocabulary and reseeds it.
func Clear(v *Vocabulary) {
	v.Entries = nil
	EnsureSeeded(v)
}
