package tlt

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// UnknownPOS is the sentinel tag for words the tagger yields nothing for.
const UnknownPOS = "UNKNOWN"

// BreakdownEngine composes segmentation, POS tagging, stopword filtering and
// translation into one structured analysis. Segmentation and tagging are
// delegated to external collaborators and fail hard; translation is a
// best-effort enrichment and degrades to empty results.
type BreakdownEngine struct {
	segmenter Segmenter
	tagger    POSTagger
	stopwords StopwordProvider
	lexical   *LexicalTranslator
	mt        Translator
}

// NewBreakdownEngine wires a breakdown engine from its collaborators.
// stopwords and mt may be nil; the corresponding enrichments then report
// no stopwords and no translations.
func NewBreakdownEngine(seg Segmenter, tagger POSTagger, stopwords StopwordProvider, mt Translator) *BreakdownEngine {
	return &BreakdownEngine{
		segmenter: seg,
		tagger:    tagger,
		stopwords: stopwords,
		lexical:   NewLexicalTranslator(mt),
		mt:        mt,
	}
}

// Breakdown analyzes Thai text. The Words sequence is never mutated by
// stopword filtering; FilteredWords is a separate slice.
func (e *BreakdownEngine) Breakdown(ctx context.Context, text string, opts BreakdownOptions) (*BreakdownResult, error) {
	words, err := e.segmenter.Segment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("segmentation failed: %w", err)
	}

	result := &BreakdownResult{
		Original:  text,
		Words:     words,
		WordCount: len(words),
	}

	if opts.FilterStopwords {
		filtered := make([]string, 0, len(words))
		for _, w := range words {
			if e.stopwords != nil && e.stopwords.IsStopword(w) {
				continue
			}
			filtered = append(filtered, w)
		}
		result.FilteredWords = filtered
	}

	if opts.IncludePOS {
		tags, err := e.tagger.TagPOS(ctx, words)
		if err != nil {
			return nil, fmt.Errorf("POS tagging failed: %w", err)
		}
		result.POSTags = make([]TaggedWord, len(words))
		for i, w := range words {
			tag := ""
			if i < len(tags) {
				tag = tags[i]
			}
			result.POSTags[i] = TaggedWord{Word: w, Tag: tag}
		}
	}

	if opts.IncludeTranslation {
		result.Translations = e.lexical.TranslateWords(ctx, words)
		if e.mt != nil {
			full, err := e.mt.Translate(ctx, text, "th", "en")
			if err != nil {
				Logger.Debug().Err(err).Msg("Full-sentence translation unavailable")
			} else {
				result.FullTranslation = full
			}
		}
	}

	return result, nil
}

// WordInfo returns details for a single Thai word.
func (e *BreakdownEngine) WordInfo(ctx context.Context, word string) (*WordInfo, error) {
	pos := UnknownPOS
	tags, err := e.tagger.TagPOS(ctx, []string{word})
	if err == nil && len(tags) > 0 && tags[0] != "" {
		pos = tags[0]
	}

	info := &WordInfo{
		Word:        word,
		Length:      utf8.RuneCountInString(word),
		POS:         pos,
		Translation: e.lexical.TranslateWord(ctx, word),
	}
	if e.stopwords != nil {
		info.IsStopword = e.stopwords.IsStopword(word)
	}
	return info, nil
}

// TranslateToThai converts English input into Thai via the machine
// translation collaborator, so it can be fed back through Breakdown.
func (e *BreakdownEngine) TranslateToThai(ctx context.Context, text string) (string, error) {
	if e.mt == nil {
		return "", ErrTranslationUnavailable
	}
	thai, err := e.mt.Translate(ctx, text, "en", "th")
	if err != nil {
		return "", fmt.Errorf("translation to Thai failed: %w", err)
	}
	return strings.TrimSpace(thai), nil
}

// Package-level convenience functions over the default manager.

// BreakdownText analyzes text using the default manager's collaborators.
func BreakdownText(text string, opts BreakdownOptions) (*BreakdownResult, error) {
	ctx := context.Background()
	mgr, err := getOrCreateDefaultManager(ctx)
	if err != nil {
		return nil, err
	}
	return mgr.BreakdownEngine().Breakdown(ctx, text, opts)
}

// CompareRomanizations romanizes text under every supported scheme using
// the default manager's backend.
func CompareRomanizations(text string) (map[string]string, error) {
	ctx := context.Background()
	mgr, err := getOrCreateDefaultManager(ctx)
	if err != nil {
		return nil, err
	}
	return NewRomanizer(mgr).CompareSchemes(ctx, text), nil
}
