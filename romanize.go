package tlt

import (
	"context"
	"errors"
	"fmt"
)

// Romanization schemes. The set is fixed; passing anything else is a caller
// error and fails loudly.
const (
	SchemeRoyin    = "royin"    // Default, Royal Thai General System (RTGS)
	SchemeThai2Rom = "thai2rom" // Deep learning based
	SchemeICU      = "icu"      // ICU transliteration
)

// SupportedSchemes lists the romanization schemes in comparison order.
var SupportedSchemes = []string{SchemeRoyin, SchemeThai2Rom, SchemeICU}

// ErrUnsupportedScheme is returned for a scheme name outside SupportedSchemes.
var ErrUnsupportedScheme = errors.New("unsupported romanization scheme")

// Romanizer romanizes Thai text under the supported schemes and compares
// results across all of them.
type Romanizer struct {
	backend RomanizerBackend
}

// NewRomanizer creates a romanizer over the given backend.
func NewRomanizer(backend RomanizerBackend) *Romanizer {
	return &Romanizer{backend: backend}
}

func supportedScheme(scheme string) bool {
	for _, s := range SupportedSchemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// Romanize romanizes text under a named scheme.
func (r *Romanizer) Romanize(ctx context.Context, text, scheme string) (string, error) {
	if !supportedScheme(scheme) {
		return "", fmt.Errorf("%w: %q (choose from %v)", ErrUnsupportedScheme, scheme, SupportedSchemes)
	}
	result, err := r.backend.RomanizeWith(ctx, text, scheme)
	if err != nil {
		return "", fmt.Errorf("romanization failed: %w", err)
	}
	return result, nil
}

// RomanizeWords romanizes every word, positionally aligned with the input.
func (r *Romanizer) RomanizeWords(ctx context.Context, words []string, scheme string) ([]string, error) {
	if !supportedScheme(scheme) {
		return nil, fmt.Errorf("%w: %q (choose from %v)", ErrUnsupportedScheme, scheme, SupportedSchemes)
	}

	romanized := make([]string, len(words))
	for i, word := range words {
		result, err := r.backend.RomanizeWith(ctx, word, scheme)
		if err != nil {
			return nil, fmt.Errorf("romanization failed for %q: %w", word, err)
		}
		romanized[i] = result
	}
	return romanized, nil
}

// CompareSchemes romanizes text under every supported scheme and returns the
// results keyed by scheme name, with the input under "original". Scheme
// invocations are independent: a failing backend contributes an inline
// error string in its slot and never aborts the others.
func (r *Romanizer) CompareSchemes(ctx context.Context, text string) map[string]string {
	results := map[string]string{"original": text}
	for _, scheme := range SupportedSchemes {
		result, err := r.backend.RomanizeWith(ctx, text, scheme)
		if err != nil {
			Logger.Debug().Err(err).Str("scheme", scheme).Msg("Romanization scheme failed")
			results[scheme] = fmt.Sprintf("Error: %v", err)
			continue
		}
		results[scheme] = result
	}
	return results
}
