package services

import "strings"

// PracticeKeywords each add keywordPoints when they appear anywhere in an answer, ignoring case.
var PracticeKeywords = []string{"problem-solving", "teamwork", "communication", "leadership", "adaptability"}

const (
	lengthThreshold = 100
	lengthPoints    = 30
	keywordPoints   = 10
)

// ScoreAnswer rates a practice answer: lengthPoints once it reaches lengthThreshold
// characters, plus keywordPoints per distinct keyword. The maximum is 80.
func ScoreAnswer(text string) int {
	score := 0
	if len([]rune(text)) >= lengthThreshold {
		score += lengthPoints
	}
	lower := strings.ToLower(text)
	for _, keyword := range PracticeKeywords {
		if strings.Contains(lower, keyword) {
			score += keywordPoints
		}
	}
	return score
}
