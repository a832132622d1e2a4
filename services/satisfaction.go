package services

// SatisfactionLevel is one of the six fixed survey outcomes. A nil Score
// marks the "not applicable" level rather than zero points.
type SatisfactionLevel struct {
	Label string `json:"label"`
	Score *int   `json:"score"`
}

func intPtr(n int) *int { return &n }

// SatisfactionLevels is the canonical vocabulary. Exactly one level, or
// none, is selected on a case at a time; the score is the level's fixed
// point value.
var SatisfactionLevels = []SatisfactionLevel{
	{"非常滿意", intPtr(100)},
	{"滿意", intPtr(75)},
	{"普通", intPtr(50)},
	{"尚須改進", intPtr(25)},
	{"不滿意", intPtr(0)},
	{"不需滿意度", nil},
}

// SatisfactionScore returns the fixed score for a level label. The second
// return value is false for labels outside the vocabulary.
func SatisfactionScore(label string) (*int, bool) {
	for _, lvl := range SatisfactionLevels {
		if lvl.Label == label {
			return lvl.Score, true
		}
	}
	return nil, false
}

// CanonicalSatisfactionLabel maps legacy spreadsheet labels onto the
// canonical vocabulary. Unknown labels pass through unchanged.
func CanonicalSatisfactionLabel(label string) string {
	switch label {
	case "尚可":
		return "普通"
	case "需改進":
		return "尚須改進"
	}
	return label
}
