package tlt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tlt "github.com/zizthefox/thai-language-toolkit"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want tlt.Language
	}{
		{"pure thai", "สวัสดีครับ", tlt.LangThai},
		{"thai with digits and punctuation", "ราคา 100 บาท!", tlt.LangThai},
		{"pure english", "hello world", tlt.LangEnglish},
		{"english with digits", "version 2 released", tlt.LangEnglish},
		{"mixed", "Hello สวัสดี", tlt.LangMixed},
		{"empty", "", tlt.LangUnknown},
		{"digits and punctuation only", "123 !!!", tlt.LangUnknown},
		{"exactly dominant ratio is still mixed", "กขคงa", tlt.LangMixed},
		{"exactly minority ratio is still mixed", "กabcd", tlt.LangMixed},
		{"just below minority ratio", "กabcde", tlt.LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tlt.DetectLanguage(tt.text))
		})
	}
}

func TestContainsThai(t *testing.T) {
	assert.True(t, tlt.ContainsThai("abc สวัสดี"))
	assert.True(t, tlt.ContainsThai("฿")) // currency sign is in the Thai block
	assert.False(t, tlt.ContainsThai("hello"))
	assert.False(t, tlt.ContainsThai(""))
}
