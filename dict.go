package tlt

// Curated Thai -> English glosses for common vocabulary. Checked before the
// machine-translation fallback so frequent words get stable, precise glosses
// without a network round trip.
var thaiEnglishDict = map[string]string{
	// Greetings and social
	"สวัสดี":   "hello",
	"ขอบคุณ":   "thank you",
	"ขอโทษ":    "sorry, excuse me",
	"ลาก่อน":   "goodbye",
	"สบายดี":   "fine, well",
	"ยินดี":    "pleased, glad",
	"ครับ":     "polite particle (male)",
	"ค่ะ":      "polite particle (female)",
	"คะ":       "polite question particle (female)",
	"ใช่":      "yes, correct",
	"ไม่":      "no, not",
	"ไม่ใช่":   "no, is not",

	// Pronouns
	"ผม":    "I, me (male); hair",
	"ฉัน":   "I, me",
	"ดิฉัน": "I, me (formal female)",
	"คุณ":   "you",
	"เขา":   "he, she, they",
	"เธอ":   "she, you (informal)",
	"เรา":   "we, us",
	"มัน":   "it",
	"ของ":   "of, belonging to",

	// Common verbs
	"เป็น":     "to be",
	"คือ":      "is, namely",
	"มี":       "to have",
	"ไป":       "to go",
	"มา":       "to come",
	"กิน":      "to eat",
	"ดื่ม":     "to drink",
	"นอน":      "to sleep",
	"รัก":      "to love",
	"ชอบ":      "to like",
	"ต้องการ":  "to want, to need",
	"อยาก":     "to want to",
	"รู้":      "to know",
	"เข้าใจ":   "to understand",
	"พูด":      "to speak",
	"ฟัง":      "to listen",
	"อ่าน":     "to read",
	"เขียน":    "to write",
	"เรียน":    "to study",
	"ทำงาน":    "to work",
	"ทำ":       "to do, to make",
	"ดู":       "to look, to watch",
	"เห็น":     "to see",
	"ซื้อ":     "to buy",
	"ขาย":      "to sell",
	"ช่วย":     "to help",
	"ชื่อ":     "name, to be named",

	// Food and drink
	"น้ำ":    "water",
	"ข้าว":   "rice",
	"อาหาร":  "food",
	"กาแฟ":   "coffee",
	"ชา":     "tea",
	"ผลไม้":  "fruit",
	"อร่อย":  "delicious",

	// Places and things
	"บ้าน":       "house, home",
	"โรงเรียน":   "school",
	"โรงแรม":     "hotel",
	"โรงพยาบาล":  "hospital",
	"ร้าน":       "shop, store",
	"ตลาด":       "market",
	"รถ":         "car, vehicle",
	"รถไฟ":       "train",
	"เครื่องบิน": "airplane",
	"หนังสือ":    "book",
	"เงิน":       "money",

	// People and animals
	"หมา":    "dog",
	"แมว":    "cat",
	"เพื่อน": "friend",
	"ครู":    "teacher",
	"หมอ":    "doctor",
	"แม่":    "mother",
	"พ่อ":    "father",
	"ลูก":    "child, offspring",
	"พี่":    "older sibling",
	"น้อง":   "younger sibling",

	// Time
	"วัน":       "day",
	"คืน":       "night",
	"เช้า":      "morning",
	"เย็น":      "evening, cool",
	"วันนี้":    "today",
	"พรุ่งนี้":  "tomorrow",
	"เมื่อวาน":  "yesterday",
	"เวลา":      "time",
	"ปี":        "year",
	"เดือน":     "month",

	// Adjectives and adverbs
	"สวย":       "beautiful",
	"หล่อ":      "handsome",
	"ดี":        "good",
	"ใหญ่":      "big",
	"เล็ก":      "small",
	"ร้อน":      "hot",
	"หนาว":      "cold",
	"แพง":       "expensive",
	"ถูก":       "cheap, correct",
	"เร็ว":      "fast",
	"ช้า":       "slow",
	"มาก":       "very, much",
	"นิดหน่อย":  "a little",
	"เหนื่อย":   "tired",
	"หิว":       "hungry",
	"อิ่ม":      "full (from eating)",
	"ดีใจ":      "glad, happy",
	"เสียใจ":    "sad, sorry",
	"สนุก":      "fun, enjoyable",
	"ง่าย":      "easy",
	"ยาก":       "difficult",

	// Question words and connectives
	"ที่ไหน":    "where",
	"อะไร":      "what",
	"ใคร":       "who",
	"ทำไม":      "why",
	"เมื่อไหร่":  "when",
	"อย่างไร":   "how",
	"ไหม":       "question particle",
	"หรือ":      "or, question particle",
	"และ":       "and",
	"แต่":       "but",
	"กับ":       "with",
	"ใน":        "in",
	"ที่":       "at, that, which",
	"จาก":       "from",
	"ถึง":       "to, to arrive",

	// Numbers
	"หนึ่ง": "one",
	"สอง":   "two",
	"สาม":   "three",
	"สี่":   "four",
	"ห้า":   "five",
	"หก":    "six",
	"เจ็ด":  "seven",
	"แปด":   "eight",
	"เก้า":  "nine",
	"สิบ":   "ten",
	"ร้อย":  "hundred",
	"พัน":   "thousand",

	// Language and country
	"ภาษา":       "language",
	"ภาษาไทย":    "Thai language",
	"ภาษาอังกฤษ": "English language",
	"ประเทศไทย":  "Thailand",
	"กรุงเทพ":    "Bangkok",
}

// DictionaryLookup returns the curated gloss for a Thai word, if any.
func DictionaryLookup(word string) (string, bool) {
	gloss, ok := thaiEnglishDict[word]
	return gloss, ok
}

// posLabels maps POS tag acronyms to human-readable labels. Covers both
// universal tags and the ORCHID tagset emitted by the Thai tagger.
var posLabels = map[string]string{
	// Universal POS tags
	"NOUN":  "Noun",
	"VERB":  "Verb",
	"ADJ":   "Adjective",
	"ADV":   "Adverb",
	"PRON":  "Pronoun",
	"DET":   "Determiner",
	"ADP":   "Preposition",
	"CONJ":  "Conjunction",
	"CCONJ": "Coordinating Conjunction",
	"SCONJ": "Subordinating Conjunction",
	"NUM":   "Number",
	"PART":  "Particle",
	"INTJ":  "Interjection",
	"AUX":   "Auxiliary Verb",
	"PROPN": "Proper Noun",
	"PUNCT": "Punctuation",
	"SYM":   "Symbol",
	"X":     "Other",

	// ORCHID tags (Thai-specific)
	"NCMN": "Common Noun",
	"NPRP": "Proper Noun",
	"DONM": "Determiner",
	"VACT": "Active Verb",
	"VSTA": "Stative Verb",
	"ADVN": "Adverb",
	"ADVP": "Adverbial Phrase",
	"ADVI": "Adverb of Inquiry",
	"ADVS": "Adverb of Space",
	"JCRG": "Coordinating Conjunction",
	"JCMP": "Comparative Conjunction",
	"NEG":  "Negation",
	"PREL": "Relative Pronoun",
	"PPRS": "Personal Pronoun",
	"RPRE": "Preposition",
	"EAFF": "Affirmative Particle",
	"CFQC": "Classifier",
	"CMTR": "Comparative Marker",
	"FIXN": "Prefix/Suffix",
	"FIXV": "Verb Prefix",
	"EITT": "Iterative Particle",
}

// POSLabel converts a POS tag acronym to a human-readable label, returning
// the tag itself when no mapping exists.
func POSLabel(tag string) string {
	if label, ok := posLabels[tag]; ok {
		return label
	}
	return tag
}
