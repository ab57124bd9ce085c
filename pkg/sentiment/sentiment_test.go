package sentiment_test

import (
	"math/rand"
	"testing"

	"neuro-assist/pkg/sentiment"
)

func TestScoreEmptyConversation(t *testing.T) {
	if got := sentiment.Score(nil); got != 50 {
		t.Errorf("expected baseline 50 for empty input, got %d", got)
	}
	if got := sentiment.Score([]string{}); got != 50 {
		t.Errorf("expected baseline 50 for empty slice, got %d", got)
	}
}

func TestScoreSingleMatch(t *testing.T) {
	// "great" matches the positive group only: 50 + 5.
	got := sentiment.Score([]string{"This was a great improvement"})
	if got != 55 {
		t.Errorf("expected 55, got %d", got)
	}
}

func TestScoreMultipleRulesPerMessage(t *testing.T) {
	// "good" (+5) and "progress" (+8) both fire on one message.
	got := sentiment.Score([]string{"good progress today"})
	if got != 63 {
		t.Errorf("expected 63, got %d", got)
	}
}

func TestScoreMixedSignals(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  int
	}{
		{"positive and negative cancel", []string{"good day", "bad night"}, 50},
		{"negative only", []string{"I feel sad", "everything is worse"}, 40},
		{"case insensitive", []string{"EXCELLENT work"}, 58},
		{"no keywords", []string{"we talked about school"}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sentiment.Score(tt.texts); got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.texts, got, tt.want)
			}
		})
	}
}

func TestScoreClamped(t *testing.T) {
	var negative []string
	for i := 0; i < 20; i++ {
		negative = append(negative, "bad and sad and anxious")
	}
	if got := sentiment.Score(negative); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}

	var positive []string
	for i := 0; i < 20; i++ {
		positive = append(positive, "great progress excellent")
	}
	if got := sentiment.Score(positive); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}
}

func TestScorePermutationInvariance(t *testing.T) {
	texts := []string{
		"good morning",
		"I had a bad dream",
		"great progress on routines",
		"feeling anxious about school",
		"things are better now",
	}
	want := sentiment.Score(texts)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), texts...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := sentiment.Score(shuffled); got != want {
			t.Fatalf("permutation %d changed score: got %d, want %d", i, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := sentiment.Clamp(-50, 0, 100); got != 0 {
		t.Errorf("Clamp(-50) = %d, want 0", got)
	}
	if got := sentiment.Clamp(500, 0, 100); got != 100 {
		t.Errorf("Clamp(500) = %d, want 100", got)
	}
	if got := sentiment.Clamp(42, 0, 100); got != 42 {
		t.Errorf("Clamp(42) = %d, want 42", got)
	}
}
