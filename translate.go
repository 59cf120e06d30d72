package tlt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrTranslationUnavailable signals that no translation backend could serve
// a request. Best-effort callers convert it to an empty result.
var ErrTranslationUnavailable = errors.New("translation unavailable")

// LexicalTranslator resolves Thai tokens to English glosses: exact match
// against the curated dictionary first, machine translation on a miss.
// Translation is an enrichment, never a hard dependency; collaborator
// failures yield an empty gloss.
type LexicalTranslator struct {
	mt Translator // may be nil, in which case dictionary misses stay empty
}

// NewLexicalTranslator creates a lexical translator with the given machine
// translation fallback.
func NewLexicalTranslator(mt Translator) *LexicalTranslator {
	return &LexicalTranslator{mt: mt}
}

// TranslateWord returns the English gloss for a Thai word, or "" when the
// word is blank or no backend can translate it.
func (t *LexicalTranslator) TranslateWord(ctx context.Context, word string) string {
	if strings.TrimSpace(word) == "" {
		return ""
	}

	if gloss, ok := DictionaryLookup(word); ok {
		return gloss
	}

	if t.mt == nil {
		return ""
	}
	gloss, err := t.mt.Translate(ctx, word, "th", "en")
	if err != nil {
		Logger.Debug().Err(err).Str("word", word).Msg("Word translation unavailable")
		return ""
	}
	return gloss
}

// TranslateWords translates every token, positionally aligned with the
// input. Blank tokens keep their slot with an empty gloss.
func (t *LexicalTranslator) TranslateWords(ctx context.Context, words []string) []string {
	glosses := make([]string, len(words))
	for i, word := range words {
		glosses[i] = t.TranslateWord(ctx, word)
	}
	return glosses
}

// TranslatorChain tries each backend in order until one succeeds. Failures
// are logged and swallowed until the chain is exhausted.
type TranslatorChain []Translator

// Translate implements Translator over the chain.
func (c TranslatorChain) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	for _, backend := range c {
		result, err := backend.Translate(ctx, text, sourceLang, targetLang)
		if err == nil {
			return result, nil
		}
		Logger.Debug().Err(err).Msg("Translation backend failed, trying next")
	}
	return "", ErrTranslationUnavailable
}

const googleTranslateURL = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator calls the free Google Translate web endpoint. No API key
// is needed, but the endpoint is rate limited and unofficial, so it sits at
// the end of the fallback chain.
type GoogleTranslator struct {
	httpClient *http.Client
}

// NewGoogleTranslator creates a Google web-endpoint translator.
func NewGoogleTranslator(timeout time.Duration) *GoogleTranslator {
	return &GoogleTranslator{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Translate implements Translator against the web endpoint.
func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleTranslateURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %w", resp.StatusCode, ErrTranslationUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translated text from the endpoint's
// nested-array payload: [[["translation", "original", ...], ...], ...].
func parseGoogleResponse(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("failed to parse translation response: %w", err)
	}
	if len(outer) == 0 {
		return "", ErrTranslationUnavailable
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("failed to parse translation segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err == nil {
			b.WriteString(part)
		}
	}

	if b.Len() == 0 {
		return "", ErrTranslationUnavailable
	}
	return b.String(), nil
}
