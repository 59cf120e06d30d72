package tlt

// Language is the coarse classification of an input string.
type Language string

const (
	LangThai    Language = "thai"
	LangEnglish Language = "english"
	LangMixed   Language = "mixed"
	LangUnknown Language = "unknown"
)

// Classification thresholds on the Thai character ratio.
const (
	thaiDominantRatio = 0.8
	thaiMinorityRatio = 0.2
)

// isThaiRune checks whether a rune falls in the Thai Unicode block.
func isThaiRune(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ContainsThai reports whether the text has at least one Thai character.
func ContainsThai(text string) bool {
	for _, r := range text {
		if isThaiRune(r) {
			return true
		}
	}
	return false
}

// DetectLanguage classifies text as Thai, English or mixed by the ratio of
// Thai-block characters to ASCII letters. Digits, punctuation and whitespace
// are ignored; text with no alphabetic characters of either class is unknown.
func DetectLanguage(text string) Language {
	var thai, english int
	for _, r := range text {
		switch {
		case isThaiRune(r):
			thai++
		case isASCIILetter(r):
			english++
		}
	}

	total := thai + english
	if total == 0 {
		return LangUnknown
	}

	ratio := float64(thai) / float64(total)
	switch {
	case ratio > thaiDominantRatio:
		return LangThai
	case ratio < thaiMinorityRatio:
		return LangEnglish
	default:
		return LangMixed
	}
}
