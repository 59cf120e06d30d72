package tlt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// GenderRewriter adapts machine-translated Thai to a gendered speaker
// register. Generic MT produces gender-neutral or arbitrarily gendered Thai;
// Thai requires gender-congruent first-person pronouns and sentence-final
// politeness particles, so the rewrite is done here as a deterministic pass.
//
// The rewrite is an ordered pipeline of string transforms; the order is
// load-bearing (possessives must be replaced before bare pronouns, since the
// possessive forms contain the bare pronoun as a substring).
//
// Known gap: the particle step only checks for the presence of *any* known
// particle before appending one, so MT output that already ends in the
// wrong-gender particle is left uncorrected.
type GenderRewriter struct {
	gender  Gender
	profile genderProfile
	steps   []func(string) string
}

// NewGenderRewriter builds the rewrite pipeline for the given gender.
// The neutral pipeline is empty: neutral text passes through unchanged.
func NewGenderRewriter(g Gender) *GenderRewriter {
	r := &GenderRewriter{gender: g, profile: profileFor(g)}
	if g == GenderNeutral {
		return r
	}
	r.steps = []func(string) string{
		r.replacePossessives,
		r.replaceBarePronouns,
	}
	if g == GenderFemale {
		// ผม is ambiguous between the male pronoun and the noun "hair",
		// so the female pipeline needs the guarded variant.
		r.steps = append(r.steps, r.disambiguateMalePronoun)
	}
	r.steps = append(r.steps, r.appendPoliteParticle)
	return r
}

// Apply rewrites machine-translated Thai for the target gender. The source
// English is used only for the fixed-phrase shortcut: idioms with a direct
// mapping bypass token-level substitution entirely.
func (r *GenderRewriter) Apply(sourceEnglish, thaiText string) string {
	if r.gender == GenderNeutral {
		return thaiText
	}

	if fixed, ok := r.profile.phrases[strings.ToLower(strings.TrimSpace(sourceEnglish))]; ok {
		return fixed
	}

	for _, step := range r.steps {
		thaiText = step(thaiText)
	}
	return thaiText
}

// ApplyGender is a convenience wrapper around a one-shot rewriter.
func ApplyGender(sourceEnglish, thaiText string, g Gender) string {
	return NewGenderRewriter(g).Apply(sourceEnglish, thaiText)
}

// replacePossessives rewrites the neutral and formal possessive forms.
// Must run before replaceBarePronouns: each possessive contains the bare
// pronoun as a substring and would otherwise be mangled.
func (r *GenderRewriter) replacePossessives(text string) string {
	for _, form := range []string{"ของฉัน", "ของดิฉัน", "ของผม"} {
		text = strings.ReplaceAll(text, form, r.profile.my)
	}
	return text
}

// replaceBarePronouns rewrites the first-person pronouns ฉัน and ดิฉัน.
// Thai does not distinguish subject and object case, so one rule covers
// both positions. The formal ดิฉัน goes first because it contains ฉัน.
func (r *GenderRewriter) replaceBarePronouns(text string) string {
	text = strings.ReplaceAll(text, "ดิฉัน", r.profile.i)
	text = strings.ReplaceAll(text, "ฉัน", r.profile.i)
	return text
}

// disambiguateMalePronoun rewrites ผม to the female pronoun where it is
// safe to treat it as a pronoun rather than the noun "hair": at the start
// of the sentence, or whitespace-preceded and not right after รัก (love)
// or ชอบ (like). The guard is a heuristic, not full disambiguation.
func (r *GenderRewriter) disambiguateMalePronoun(text string) string {
	const pronoun = "ผม"

	if strings.HasPrefix(text, pronoun) {
		text = r.profile.i + text[len(pronoun):]
	}

	idx := 0
	for {
		k := strings.Index(text[idx:], pronoun)
		if k < 0 {
			break
		}
		pos := idx + k
		if pos == 0 {
			idx = pos + len(pronoun)
			continue
		}

		// Walk back over the whitespace run preceding the token.
		ws := pos
		for ws > 0 {
			prev, size := utf8.DecodeLastRuneInString(text[:ws])
			if !unicode.IsSpace(prev) {
				break
			}
			ws -= size
		}
		if ws == pos || strings.HasSuffix(text[:ws], "รัก") || strings.HasSuffix(text[:ws], "ชอบ") {
			idx = pos + len(pronoun)
			continue
		}

		text = text[:ws] + " " + r.profile.i + text[pos+len(pronoun):]
		idx = ws + len(" ") + len(r.profile.i)
	}
	return text
}

// appendPoliteParticle appends the gender's sentence-final particle unless
// the text already ends in one of the known particles. Interrogatives
// (ending in ไหม or หรือ, or carrying a question mark) take the question
// particle; a trailing question mark is stripped first.
func (r *GenderRewriter) appendPoliteParticle(text string) string {
	if r.profile.politeParticle == "" {
		return text
	}

	isQuestion := strings.Contains(text, "?")

	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimSpace(strings.TrimRight(trimmed, "?"))
	for _, p := range politeParticles {
		if strings.HasSuffix(trimmed, p) {
			return text
		}
	}

	if strings.HasSuffix(trimmed, "ไหม") || strings.HasSuffix(trimmed, "หรือ") {
		isQuestion = true
	}

	if isQuestion {
		return trimmed + r.profile.politeQuestion
	}
	return trimmed + r.profile.politeParticle
}
