package tlt

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed CSV interchange header. Field order is part of the format.
const csvHeader = "Thai,Romanization,English,Part of Speech,Example,Difficulty,Times Reviewed"

// ExportCSV renders the deck in the 7-column interchange format: one quoted
// row per card, review counts unquoted. Embedded quotes are not escaped;
// the format deliberately mirrors the minimal import parser.
func (d *Deck) ExportCSV() string {
	lines := make([]string, 0, len(d.Cards)+1)
	lines = append(lines, csvHeader)
	for _, card := range d.Cards {
		lines = append(lines, fmt.Sprintf(`"%s","%s","%s","%s","%s","%s",%d`,
			card.Thai, card.Romanization, card.English,
			card.POSTag, card.Example, card.Difficulty, card.TimesReviewed))
	}
	return strings.Join(lines, "\n")
}

// ImportCSV parses interchange-format content and adds each row as a card,
// returning the number of cards actually added. Rows with fewer than three
// fields are skipped; missing trailing fields default to empty, learning
// and zero. Duplicates go through the usual AddCard check and are silently
// skipped without counting.
func (d *Deck) ImportCSV(content string) int {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) < 2 {
		return 0
	}

	imported := 0
	for _, line := range lines[1:] {
		fields := splitCSVLine(line)
		if len(fields) < 3 {
			continue
		}

		card := &Flashcard{
			Thai:         fields[0],
			Romanization: fields[1],
			English:      fields[2],
			Difficulty:   DifficultyLearning,
		}
		if len(fields) > 3 {
			card.POSTag = fields[3]
		}
		if len(fields) > 4 {
			card.Example = fields[4]
		}
		if len(fields) > 5 && fields[5] != "" {
			card.Difficulty = Difficulty(fields[5])
		}
		if len(fields) > 6 {
			if n, err := strconv.Atoi(fields[6]); err == nil && n >= 0 {
				card.TimesReviewed = n
			}
		}

		if d.AddCard(card) {
			imported++
		}
	}
	return imported
}

// splitCSVLine splits one CSV line on commas outside quoted fields. Each
// quote character toggles the in-quotes state and is dropped; doubled-quote
// escapes are not part of the interchange format. Fields are trimmed.
func splitCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
