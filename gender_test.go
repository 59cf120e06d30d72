package tlt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tlt "github.com/zizthefox/thai-language-toolkit"
)

func TestApplyGenderNeutralPassthrough(t *testing.T) {
	assert.Equal(t, "ฉันชอบกินข้าว", tlt.ApplyGender("I like eating rice", "ฉันชอบกินข้าว", tlt.GenderNeutral))
}

func TestApplyGenderPhraseShortcut(t *testing.T) {
	assert.Equal(t, "สวัสดีครับ", tlt.ApplyGender("hello", "สวัสดี", tlt.GenderMale))
	assert.Equal(t, "สวัสดีค่ะ", tlt.ApplyGender("hello", "สวัสดี", tlt.GenderFemale))
	// Shortcut lookup is case and whitespace insensitive.
	assert.Equal(t, "ขอบคุณครับ", tlt.ApplyGender("  Thank You ", "ขอบคุณ", tlt.GenderMale))
}

func TestApplyGenderMale(t *testing.T) {
	tests := []struct {
		name    string
		english string
		thai    string
		want    string
	}{
		{"possessive rewritten", "this is my book", "นี่คือหนังสือของฉัน", "นี่คือหนังสือของผมครับ"},
		{"bare pronoun rewritten", "I eat rice", "ฉันกินข้าว", "ผมกินข้าวครับ"},
		{"formal female pronoun rewritten", "I eat rice", "ดิฉันกินข้าว", "ผมกินข้าวครับ"},
		{"question mark stripped before particle", "what is your name?", "คุณชื่ออะไร?", "คุณชื่ออะไรครับ"},
		{"question word takes particle", "are you well?", "คุณสบายดีไหม", "คุณสบายดีไหมครับ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tlt.ApplyGender(tt.english, tt.thai, tlt.GenderMale))
		})
	}
}

func TestApplyGenderFemale(t *testing.T) {
	tests := []struct {
		name    string
		english string
		thai    string
		want    string
	}{
		{"male pronoun at sentence start", "I like eating rice", "ผมชอบกินข้าว", "ฉันชอบกินข้าวค่ะ"},
		{"male pronoun after whitespace", "then I went", "แล้ว ผมไป", "แล้ว ฉันไปค่ะ"},
		{"question gets question particle", "what is your name?", "คุณชื่ออะไร?", "คุณชื่ออะไรคะ"},
		{"question word gets question particle", "are you well?", "คุณสบายดีไหม", "คุณสบายดีไหมคะ"},
		{"possessive rewritten", "this is my book", "นี่คือหนังสือของผม", "นี่คือหนังสือของฉันค่ะ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tlt.ApplyGender(tt.english, tt.thai, tlt.GenderFemale))
		})
	}
}

func TestApplyGenderHairGuard(t *testing.T) {
	// ผม directly after รัก with no whitespace is the noun "hair", not the
	// pronoun, and must be left alone.
	assert.Equal(t, "ฉันรักผมค่ะ", tlt.ApplyGender("I love my hair", "ผมรักผม", tlt.GenderFemale))
	// Same for ชอบ even across whitespace.
	assert.Equal(t, "เขาชอบ ผมค่ะ", tlt.ApplyGender("he likes hair", "เขาชอบ ผม", tlt.GenderFemale))
	// No whitespace before the token means noun usage.
	assert.Equal(t, "เขาตัดผมค่ะ", tlt.ApplyGender("he cuts hair", "เขาตัดผม", tlt.GenderFemale))
}

func TestApplyGenderExistingParticleKept(t *testing.T) {
	// Text already ending in a particle is left alone, even when the
	// particle belongs to the other gender.
	assert.Equal(t, "สวัสดีครับ", tlt.ApplyGender("greetings", "สวัสดีครับ", tlt.GenderFemale))
	assert.Equal(t, "ขอบคุณค่ะ", tlt.ApplyGender("thanks a lot", "ขอบคุณค่ะ", tlt.GenderMale))
}

func TestPronoun(t *testing.T) {
	assert.Equal(t, "ผม", tlt.Pronoun("i", tlt.GenderMale))
	assert.Equal(t, "ฉัน", tlt.Pronoun("me", tlt.GenderFemale))
	assert.Equal(t, "ของผม", tlt.Pronoun("my", tlt.GenderMale))
	assert.Equal(t, "ของฉัน", tlt.Pronoun("mine", tlt.GenderNeutral))
	assert.Equal(t, "ตัวฉันเอง", tlt.Pronoun("myself", tlt.GenderFemale))
	assert.Equal(t, "", tlt.Pronoun("you", tlt.GenderMale))
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "ผมรัก", tlt.Phrase("i love", tlt.GenderMale))
	assert.Equal(t, "ใช่", tlt.Phrase("yes", tlt.GenderNeutral))
	assert.Equal(t, "ค่ะ", tlt.Phrase("yes", tlt.GenderFemale))
	assert.Equal(t, "", tlt.Phrase("no such phrase", tlt.GenderMale))
}
