package tlt

// Gender selects the speaker register for translation adjustments.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// genderProfile holds the static substitution data for one speaker gender.
type genderProfile struct {
	i              string // first-person pronoun, subject and object alike
	my             string // possessive form
	myself         string
	politeParticle string // sentence-final particle for statements
	politeQuestion string // sentence-final particle for questions
	phrases        map[string]string // fixed English phrase -> Thai rendering
}

// The three known sentence-final politeness particles. A sentence already
// ending in any of these is left alone by the particle step.
var politeParticles = []string{"ครับ", "ค่ะ", "คะ"}

var genderProfiles = map[Gender]genderProfile{
	GenderMale: {
		i:              "ผม",
		my:             "ของผม",
		myself:         "ตัวผมเอง",
		politeParticle: "ครับ",
		politeQuestion: "ครับ",
		phrases: map[string]string{
			"hello":        "สวัสดีครับ",
			"thank you":    "ขอบคุณครับ",
			"excuse me":    "ขอโทษครับ",
			"good morning": "สวัสดีตอนเช้าครับ",
			"good night":   "ราตรีสวัสดิ์ครับ",
			"goodbye":      "ลาก่อนครับ",
			"yes":          "ครับ",
			"i am":         "ผมเป็น",
			"i have":       "ผมมี",
			"i want":       "ผมต้องการ",
			"i like":       "ผมชอบ",
			"i love":       "ผมรัก",
			"i need":       "ผมต้องการ",
			"i think":      "ผมคิดว่า",
			"i know":       "ผมรู้",
			"i understand": "ผมเข้าใจ",
		},
	},
	GenderFemale: {
		// ฉัน rather than the very formal ดิฉัน; the formal variant is
		// mainly used in professional or official settings.
		i:              "ฉัน",
		my:             "ของฉัน",
		myself:         "ตัวฉันเอง",
		politeParticle: "ค่ะ",
		politeQuestion: "คะ",
		phrases: map[string]string{
			"hello":        "สวัสดีค่ะ",
			"thank you":    "ขอบคุณค่ะ",
			"excuse me":    "ขอโทษค่ะ",
			"good morning": "สวัสดีตอนเช้าค่ะ",
			"good night":   "ราตรีสวัสดิ์ค่ะ",
			"goodbye":      "ลาก่อนค่ะ",
			"yes":          "ค่ะ",
			"i am":         "ฉันเป็น",
			"i have":       "ฉันมี",
			"i want":       "ฉันต้องการ",
			"i like":       "ฉันชอบ",
			"i love":       "ฉันรัก",
			"i need":       "ฉันต้องการ",
			"i think":      "ฉันคิดว่า",
			"i know":       "ฉันรู้",
			"i understand": "ฉันเข้าใจ",
		},
	},
	GenderNeutral: {
		i:              "ฉัน",
		my:             "ของฉัน",
		myself:         "ตัวฉันเอง",
		politeParticle: "",
		politeQuestion: "",
		phrases: map[string]string{
			"hello":        "สวัสดี",
			"thank you":    "ขอบคุณ",
			"excuse me":    "ขอโทษ",
			"good morning": "สวัสดีตอนเช้า",
			"good night":   "ราตรีสวัสดิ์",
			"goodbye":      "ลาก่อน",
			"yes":          "ใช่",
			"i am":         "ฉันเป็น",
			"i have":       "ฉันมี",
			"i want":       "ฉันต้องการ",
			"i like":       "ฉันชอบ",
			"i love":       "ฉันรัก",
			"i need":       "ฉันต้องการ",
			"i think":      "ฉันคิดว่า",
			"i know":       "ฉันรู้",
			"i understand": "ฉันเข้าใจ",
		},
	},
}

// profileFor returns the profile for g, falling back to neutral for
// unrecognized values.
func profileFor(g Gender) genderProfile {
	if p, ok := genderProfiles[g]; ok {
		return p
	}
	return genderProfiles[GenderNeutral]
}

// Pronoun returns the Thai rendering of an English first-person pronoun key
// ("i", "me", "my", "mine", "myself") for the given gender.
func Pronoun(key string, g Gender) string {
	p := profileFor(g)
	switch key {
	case "i", "me":
		return p.i
	case "my", "mine":
		return p.my
	case "myself":
		return p.myself
	}
	return ""
}

// Phrase returns the gender-appropriate Thai rendering of a common English
// phrase, or "" when the phrase has no fixed mapping.
func Phrase(english string, g Gender) string {
	return profileFor(g).phrases[english]
}
