package tlt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tlt "github.com/zizthefox/thai-language-toolkit"
)

func TestNewDeck(t *testing.T) {
	deck := tlt.NewDeck("Vocabulary")
	assert.Equal(t, "Vocabulary", deck.Name)
	assert.Empty(t, deck.Cards)

	deck = tlt.NewDeck("")
	assert.Equal(t, tlt.DefaultDeckName, deck.Name)
}

func TestAddCard(t *testing.T) {
	deck := tlt.NewDeck("test")

	assert.True(t, deck.AddCard(tlt.NewFlashcard("สวัสดี", "hello")))
	assert.True(t, deck.AddCard(tlt.NewFlashcard("ขอบคุณ", "thank you")))
	assert.Len(t, deck.Cards, 2)

	// Same Thai value is a duplicate even with a different gloss
	assert.False(t, deck.AddCard(tlt.NewFlashcard("สวัสดี", "hi")))
	assert.Len(t, deck.Cards, 2)
	assert.Equal(t, "hello", deck.Cards[0].English)
}

func TestAddCardDefaultsDifficulty(t *testing.T) {
	deck := tlt.NewDeck("test")
	deck.AddCard(&tlt.Flashcard{Thai: "กิน", English: "to eat"})
	assert.Equal(t, tlt.DifficultyLearning, deck.Cards[0].Difficulty)
}

func TestRemoveCard(t *testing.T) {
	deck := tlt.NewDeck("test")
	deck.AddCard(tlt.NewFlashcard("หนึ่ง", "one"))
	deck.AddCard(tlt.NewFlashcard("สอง", "two"))
	deck.AddCard(tlt.NewFlashcard("สาม", "three"))

	deck.RemoveCard(1)
	require.Len(t, deck.Cards, 2)
	assert.Equal(t, "หนึ่ง", deck.Cards[0].Thai)
	assert.Equal(t, "สาม", deck.Cards[1].Thai)

	// Out-of-bounds indexes are no-ops
	deck.RemoveCard(-1)
	deck.RemoveCard(5)
	assert.Len(t, deck.Cards, 2)
}

func TestGradeCard(t *testing.T) {
	deck := tlt.NewDeck("test")
	deck.AddCard(tlt.NewFlashcard("สวัสดี", "hello"))

	card := deck.Cards[0]
	require.Nil(t, card.LastReviewed)

	deck.GradeCard(0, tlt.DifficultyKnown)
	assert.Equal(t, tlt.DifficultyKnown, card.Difficulty)
	assert.Equal(t, 1, card.TimesReviewed)
	require.NotNil(t, card.LastReviewed)

	first := *card.LastReviewed
	deck.GradeCard(0, tlt.DifficultyDifficult)
	assert.Equal(t, tlt.DifficultyDifficult, card.Difficulty)
	assert.Equal(t, 2, card.TimesReviewed)
	assert.False(t, card.LastReviewed.Before(first))

	// Out-of-bounds grades change nothing
	deck.GradeCard(7, tlt.DifficultyKnown)
	assert.Equal(t, 2, card.TimesReviewed)
}

func TestCardsByDifficulty(t *testing.T) {
	deck := tlt.NewDeck("test")
	deck.AddCard(tlt.NewFlashcard("หนึ่ง", "one"))
	deck.AddCard(tlt.NewFlashcard("สอง", "two"))
	deck.AddCard(tlt.NewFlashcard("สาม", "three"))
	deck.GradeCard(1, tlt.DifficultyKnown)

	learning := deck.CardsByDifficulty(tlt.DifficultyLearning)
	require.Len(t, learning, 2)
	assert.Equal(t, "หนึ่ง", learning[0].Thai)
	assert.Equal(t, "สาม", learning[1].Thai)

	assert.Len(t, deck.CardsByDifficulty(tlt.DifficultyKnown), 1)
	assert.Empty(t, deck.CardsByDifficulty(tlt.DifficultyDifficult))
}

func TestCardsByPOS(t *testing.T) {
	deck := tlt.NewDeck("test")
	deck.AddCard(&tlt.Flashcard{Thai: "กิน", English: "to eat", POSTag: "VERB"})
	deck.AddCard(&tlt.Flashcard{Thai: "ข้าว", English: "rice", POSTag: "NOUN"})
	deck.AddCard(&tlt.Flashcard{Thai: "นอน", English: "to sleep", POSTag: "VERB"})

	verbs := deck.CardsByPOS("VERB")
	require.Len(t, verbs, 2)
	assert.Equal(t, "กิน", verbs[0].Thai)
	assert.Empty(t, deck.CardsByPOS("ADJ"))
}

func TestSaveAndLoadDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")

	deck := tlt.NewDeck("ศัพท์ของฉัน")
	deck.AddCard(&tlt.Flashcard{
		Thai:         "สวัสดี",
		English:      "hello",
		Romanization: "sawatdi",
		POSTag:       "INTJ",
		Example:      "สวัสดีครับ",
		Difficulty:   tlt.DifficultyLearning,
	})
	deck.GradeCard(0, tlt.DifficultyKnown)
	require.NoError(t, deck.Save(path))

	// Thai text must be stored readable, not as \u escapes
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "สวัสดี")
	assert.NotContains(t, string(raw), `\u0e`)

	loaded, err := tlt.LoadDeck(path)
	require.NoError(t, err)
	assert.Equal(t, "ศัพท์ของฉัน", loaded.Name)
	require.Len(t, loaded.Cards, 1)

	card := loaded.Cards[0]
	assert.Equal(t, "สวัสดี", card.Thai)
	assert.Equal(t, "sawatdi", card.Romanization)
	assert.Equal(t, tlt.DifficultyKnown, card.Difficulty)
	assert.Equal(t, 1, card.TimesReviewed)
	require.NotNil(t, card.LastReviewed)
}

func TestLoadDeckMissingFile(t *testing.T) {
	deck, err := tlt.LoadDeck(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)
	assert.Equal(t, tlt.DefaultDeckName, deck.Name)
	assert.Empty(t, deck.Cards)
}

func TestLoadDeckMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := tlt.LoadDeck(path)
	assert.Error(t, err)
}

func TestLoadDeckNormalizesEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	deck, err := tlt.LoadDeck(path)
	require.NoError(t, err)
	assert.Equal(t, tlt.DefaultDeckName, deck.Name)
	assert.NotNil(t, deck.Cards)
}

func TestExportCSV(t *testing.T) {
	deck := tlt.NewDeck("test")
	deck.AddCard(&tlt.Flashcard{
		Thai:         "สวัสดี",
		English:      "hello",
		Romanization: "sawatdi",
		POSTag:       "INTJ",
		Example:      "สวัสดีครับ",
		Difficulty:   tlt.DifficultyKnown,
	})
	deck.AddCard(tlt.NewFlashcard("กิน", "to eat"))

	out := deck.ExportCSV()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Thai,Romanization,English,Part of Speech,Example,Difficulty,Times Reviewed", lines[0])
	assert.Equal(t, `"สวัสดี","sawatdi","hello","INTJ","สวัสดีครับ","known",0`, lines[1])
	assert.Equal(t, `"กิน","","to eat","","","learning",0`, lines[2])
}

func TestImportCSV(t *testing.T) {
	deck := tlt.NewDeck("test")
	content := strings.Join([]string{
		"Thai,Romanization,English,Part of Speech,Example,Difficulty,Times Reviewed",
		`"สวัสดี","sawatdi","hello","INTJ","สวัสดีครับ","known",3`,
		`"กิน","kin","to eat"`,
		`"ข้าว"`, // too few fields, skipped
		`"สวัสดี","","hi"`, // duplicate, skipped
	}, "\n")

	added := deck.ImportCSV(content)
	assert.Equal(t, 2, added)
	require.Len(t, deck.Cards, 2)

	first := deck.Cards[0]
	assert.Equal(t, "สวัสดี", first.Thai)
	assert.Equal(t, tlt.DifficultyKnown, first.Difficulty)
	assert.Equal(t, 3, first.TimesReviewed)
	assert.Equal(t, "INTJ", first.POSTag)

	second := deck.Cards[1]
	assert.Equal(t, "กิน", second.Thai)
	assert.Equal(t, tlt.DifficultyLearning, second.Difficulty)
	assert.Equal(t, 0, second.TimesReviewed)
}

func TestImportCSVQuotedCommas(t *testing.T) {
	deck := tlt.NewDeck("test")
	content := "Thai,Romanization,English,Part of Speech,Example,Difficulty,Times Reviewed\n" +
		`"ขอโทษ","kho thot","sorry, excuse me"`

	assert.Equal(t, 1, deck.ImportCSV(content))
	require.Len(t, deck.Cards, 1)
	assert.Equal(t, "sorry, excuse me", deck.Cards[0].English)
}

func TestImportCSVRoundTrip(t *testing.T) {
	deck := tlt.NewDeck("source")
	deck.AddCard(&tlt.Flashcard{Thai: "สวัสดี", English: "hello", Difficulty: tlt.DifficultyDifficult})
	deck.AddCard(&tlt.Flashcard{Thai: "ขอโทษ", English: "sorry, excuse me", Difficulty: tlt.DifficultyLearning})

	target := tlt.NewDeck("target")
	assert.Equal(t, 2, target.ImportCSV(deck.ExportCSV()))
	require.Len(t, target.Cards, 2)
	assert.Equal(t, tlt.DifficultyDifficult, target.Cards[0].Difficulty)
	assert.Equal(t, "sorry, excuse me", target.Cards[1].English)
}

func TestImportCSVEmpty(t *testing.T) {
	deck := tlt.NewDeck("test")
	assert.Equal(t, 0, deck.ImportCSV(""))
	assert.Equal(t, 0, deck.ImportCSV("Thai,Romanization,English,Part of Speech,Example,Difficulty,Times Reviewed"))
}
