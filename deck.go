package tlt

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Difficulty is a flashcard's self-assessment bucket.
type Difficulty string

const (
	DifficultyLearning  Difficulty = "learning"
	DifficultyKnown     Difficulty = "known"
	DifficultyDifficult Difficulty = "difficult"
)

// DefaultDeckName is used for decks loaded from a missing file.
const DefaultDeckName = "My Deck"

// Flashcard is a single vocabulary card. The Thai field is the identity key;
// a deck never holds two cards with the same Thai value.
type Flashcard struct {
	Thai          string     `json:"thai"`
	English       string     `json:"english"`
	Romanization  string     `json:"romanization"`
	POSTag        string     `json:"pos_tag"`
	Example       string     `json:"example"`
	Difficulty    Difficulty `json:"difficulty"`
	TimesReviewed int        `json:"times_reviewed"`
	LastReviewed  *time.Time `json:"last_reviewed"`
}

// NewFlashcard creates a card in the learning bucket with no review history.
func NewFlashcard(thai, english string) *Flashcard {
	return &Flashcard{
		Thai:       thai,
		English:    english,
		Difficulty: DifficultyLearning,
	}
}

// Deck is an ordered, duplicate-free collection of flashcards. Insertion
// order is significant: removal and grading are index-addressed. The deck is
// single-writer; a caller sharing one across goroutines must add its own
// locking around each load-mutate-save cycle.
type Deck struct {
	Name  string       `json:"name"`
	Cards []*Flashcard `json:"cards"`
}

// NewDeck creates an empty deck.
func NewDeck(name string) *Deck {
	if name == "" {
		name = DefaultDeckName
	}
	return &Deck{Name: name, Cards: []*Flashcard{}}
}

// AddCard appends a card, preserving insertion order. Returns false without
// modifying the deck when a card with the same Thai value already exists;
// a duplicate is an expected user situation, not an error.
func (d *Deck) AddCard(card *Flashcard) bool {
	for _, existing := range d.Cards {
		if existing.Thai == card.Thai {
			return false
		}
	}
	if card.Difficulty == "" {
		card.Difficulty = DifficultyLearning
	}
	d.Cards = append(d.Cards, card)
	return true
}

// RemoveCard removes the card at index. Out-of-bounds indexes are a no-op.
func (d *Deck) RemoveCard(index int) {
	if index < 0 || index >= len(d.Cards) {
		return
	}
	d.Cards = append(d.Cards[:index], d.Cards[index+1:]...)
}

// GradeCard records a review outcome: the card moves to the given bucket,
// its review counter increments and its review timestamp refreshes.
// Out-of-bounds indexes are a no-op. No grade ever removes a card.
func (d *Deck) GradeCard(index int, difficulty Difficulty) {
	if index < 0 || index >= len(d.Cards) {
		return
	}
	now := time.Now()
	card := d.Cards[index]
	card.Difficulty = difficulty
	card.TimesReviewed++
	card.LastReviewed = &now
}

// CardsByDifficulty returns the cards in a bucket, relative order preserved.
func (d *Deck) CardsByDifficulty(difficulty Difficulty) []*Flashcard {
	var cards []*Flashcard
	for _, card := range d.Cards {
		if card.Difficulty == difficulty {
			cards = append(cards, card)
		}
	}
	return cards
}

// CardsByPOS returns the cards carrying a POS tag, relative order preserved.
func (d *Deck) CardsByPOS(tag string) []*Flashcard {
	var cards []*Flashcard
	for _, card := range d.Cards {
		if card.POSTag == tag {
			cards = append(cards, card)
		}
	}
	return cards
}

// Save writes the deck as indented UTF-8 JSON with Thai text unescaped.
// There is no autosave; callers persist after every mutation.
func (d *Deck) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create deck file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	return nil
}

// LoadDeck reads a deck from a JSON file. A missing file is the expected
// steady state for a fresh session and yields an empty default deck, not
// an error. Malformed JSON is an error.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewDeck(DefaultDeckName), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var deck Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse deck file: %w", err)
	}
	if deck.Name == "" {
		deck.Name = DefaultDeckName
	}
	if deck.Cards == nil {
		deck.Cards = []*Flashcard{}
	}
	return &deck, nil
}
