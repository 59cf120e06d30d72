package tlt

import "context"

// Segmenter splits running Thai text into an ordered token sequence.
// Tokens may include punctuation and whitespace; callers filter for display.
type Segmenter interface {
	Segment(ctx context.Context, text string) ([]string, error)
}

// POSTagger tags a token sequence with part-of-speech labels,
// positionally aligned with the input.
type POSTagger interface {
	TagPOS(ctx context.Context, words []string) ([]string, error)
}

// StopwordProvider reports membership in a Thai stopword set.
type StopwordProvider interface {
	IsStopword(word string) bool
}

// RomanizerBackend romanizes Thai text under a named scheme.
type RomanizerBackend interface {
	RomanizeWith(ctx context.Context, text, scheme string) (string, error)
}

// Translator performs machine translation between two languages.
// Implementations are fallible external collaborators; callers on
// best-effort paths must swallow errors rather than propagate them.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// TaggedWord is a (token, POS tag) pair.
type TaggedWord struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

// BreakdownOptions selects which enrichments Breakdown computes.
type BreakdownOptions struct {
	IncludePOS         bool // tag every token with a part of speech
	FilterStopwords    bool // compute FilteredWords alongside Words
	IncludeTranslation bool // per-word glosses plus a full-sentence translation
}

// BreakdownResult is the structured output of a text breakdown.
// Optional fields are nil (slices) or empty (strings) when the
// corresponding option was off or the collaborator was unavailable.
type BreakdownResult struct {
	Original        string       `json:"original"`
	Words           []string     `json:"words"`
	WordCount       int          `json:"word_count"`
	FilteredWords   []string     `json:"filtered_words,omitempty"`
	POSTags         []TaggedWord `json:"pos_tags,omitempty"`
	Translations    []string     `json:"translations,omitempty"`
	FullTranslation string       `json:"full_translation,omitempty"`
}

// WordInfo describes a single Thai word.
type WordInfo struct {
	Word        string `json:"word"`
	Length      int    `json:"length"` // length in runes, not bytes
	POS         string `json:"pos"`    // "UNKNOWN" when tagging yields nothing
	IsStopword  bool   `json:"is_stopword"`
	Translation string `json:"translation,omitempty"`
}
