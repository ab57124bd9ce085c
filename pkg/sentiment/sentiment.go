package sentiment

import "strings"

// Baseline is the neutral score assigned to an empty conversation.
const Baseline = 50

// Keyword groups and their per-match deltas. Each group is tested
// independently per message, so one message can trigger several rules.
var (
	positiveKeywords = []string{"good", "great", "happy", "better"}
	negativeKeywords = []string{"bad", "sad", "anxious", "worse"}
	strongKeywords   = []string{"progress", "excellent"}
)

const (
	positiveDelta = 5
	negativeDelta = -5
	strongDelta   = 8
)

// Score computes a bounded [0,100] sentiment score for a conversation.
// The result depends only on the multiset of message texts: reordering the
// input never changes the score.
func Score(texts []string) int {
	score := Baseline
	for _, text := range texts {
		lower := strings.ToLower(text)
		if containsAny(lower, positiveKeywords) {
			score += positiveDelta
		}
		if containsAny(lower, negativeKeywords) {
			score += negativeDelta
		}
		if containsAny(lower, strongKeywords) {
			score += strongDelta
		}
	}
	return Clamp(score, 0, 100)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
