package usecase_test

import (
	"context"
	"testing"
	"time"

	"neuro-assist/internal/analytics"
	"neuro-assist/internal/analytics/usecase"
	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/journal/repository/memory"
	"neuro-assist/internal/model"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func addEmotions(t *testing.T, repo repository.Repository, userID string, labels ...string) {
	t.Helper()
	for i, label := range labels {
		_, err := repo.CreateEmotion(context.Background(), model.Emotion{
			ID:        label + "-" + string(rune('a'+i)),
			UserID:    userID,
			Label:     label,
			Emoji:     "😊",
			Intensity: 3,
			Timestamp: time.Now(),
		})
		if err != nil {
			t.Fatalf("seed emotion: %v", err)
		}
	}
}

func TestEmotionSummary(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("buckets by label in first-seen order", func(t *testing.T) {
		repo := memory.New(&mockLogger{})
		addEmotions(t, repo, "u1", "Happy", "Happy", "Sad")
		uc := usecase.New(&mockLogger{}, repo)

		out, err := uc.EmotionSummary(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(out.Buckets))
		}
		if out.Buckets[0].Label != "Happy" || out.Buckets[0].Count != 2 {
			t.Errorf("unexpected first bucket: %+v", out.Buckets[0])
		}
		if out.Buckets[1].Label != "Sad" || out.Buckets[1].Count != 1 {
			t.Errorf("unexpected second bucket: %+v", out.Buckets[1])
		}
		if out.Buckets[0].Color != "#34D399" || out.Buckets[1].Color != "#60A5FA" {
			t.Errorf("unexpected colors: %+v", out.Buckets)
		}
		if out.Placeholder {
			t.Errorf("real data must not be flagged as placeholder")
		}
		if out.Insight != "Mostly positive emotions! Great week." {
			t.Errorf("unexpected insight: %q", out.Insight)
		}
	})

	t.Run("unknown label gets the default color", func(t *testing.T) {
		repo := memory.New(&mockLogger{})
		addEmotions(t, repo, "u1", "Bewildered")
		uc := usecase.New(&mockLogger{}, repo)

		out, err := uc.EmotionSummary(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Buckets[0].Color != "#CBD5E1" {
			t.Errorf("expected default color, got %s", out.Buckets[0].Color)
		}
		if out.Insight != "Emotions are balanced and stable." {
			t.Errorf("unexpected insight: %q", out.Insight)
		}
	})

	t.Run("no emotions serves the placeholder distribution", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, memory.New(&mockLogger{}))

		out, err := uc.EmotionSummary(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Placeholder {
			t.Errorf("expected placeholder flag")
		}
		if len(out.Buckets) != 4 {
			t.Fatalf("expected 4 placeholder buckets, got %d", len(out.Buckets))
		}
		want := []analytics.EmotionBucket{
			{Label: "Happy", Count: 4, Color: "#34D399"},
			{Label: "Neutral", Count: 3, Color: "#94A3B8"},
			{Label: "Anxious", Count: 1, Color: "#F87171"},
			{Label: "Excited", Count: 2, Color: "#FBBF24"},
		}
		for i, b := range out.Buckets {
			if b != want[i] {
				t.Errorf("bucket %d: expected %+v, got %+v", i, want[i], b)
			}
		}
	})

	t.Run("distress labels produce the negative narrative", func(t *testing.T) {
		repo := memory.New(&mockLogger{})
		addEmotions(t, repo, "u1", "Anxious", "Anxious", "Happy")
		uc := usecase.New(&mockLogger{}, repo)

		out, _ := uc.EmotionSummary(context.Background(), sc)
		if out.Insight != "Indicates some distress. Review triggers." {
			t.Errorf("unexpected insight: %q", out.Insight)
		}
	})

	t.Run("ties break toward the first-seen label", func(t *testing.T) {
		repo := memory.New(&mockLogger{})
		addEmotions(t, repo, "u1", "Sad", "Happy")
		uc := usecase.New(&mockLogger{}, repo)

		out, _ := uc.EmotionSummary(context.Background(), sc)
		if out.Insight != "Indicates some distress. Review triggers." {
			t.Errorf("expected Sad to win the tie, got insight %q", out.Insight)
		}
	})
}

func TestRoutineAdherence(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("current weekday is live, the rest are baselines", func(t *testing.T) {
		repo := memory.New(&mockLogger{})
		now := time.Now()
		repo.CreateRoutine(context.Background(), model.Routine{ID: "r1", UserID: "u1", Label: "a", Completed: true, Timestamp: now})
		repo.CreateRoutine(context.Background(), model.Routine{ID: "r2", UserID: "u1", Label: "b", Completed: true, Timestamp: now})
		repo.CreateRoutine(context.Background(), model.Routine{ID: "r3", UserID: "u1", Label: "c", Completed: false, Timestamp: now})
		uc := usecase.New(&mockLogger{}, repo)

		out, err := uc.RoutineAdherence(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Days) != 7 {
			t.Fatalf("expected 7 day stats, got %d", len(out.Days))
		}

		todayIndex := (int(now.Weekday()) + 6) % 7
		baseline := [7]int{4, 5, 3, 6, 4, 2, 5}
		for i, d := range out.Days {
			if i == todayIndex {
				if d.Completed != 2 || d.Total != 3 {
					t.Errorf("today: expected 2/3, got %d/%d", d.Completed, d.Total)
				}
				continue
			}
			if d.Completed != baseline[i] || d.Total != 6 {
				t.Errorf("day %s: expected %d/6, got %d/%d", d.Day, baseline[i], d.Completed, d.Total)
			}
		}
		if out.Days[0].Day != "Mon" || out.Days[6].Day != "Sun" {
			t.Errorf("unexpected day ordering: %+v", out.Days)
		}
	})

	t.Run("empty day gets the visual total floor", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, memory.New(&mockLogger{}))

		out, err := uc.RoutineAdherence(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		todayIndex := (int(time.Now().Weekday()) + 6) % 7
		today := out.Days[todayIndex]
		if today.Completed != 0 || today.Total != 5 {
			t.Errorf("expected 0/5 floor, got %d/%d", today.Completed, today.Total)
		}
	})
}

func TestWellnessIndex(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("requires a known contact", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, memory.New(&mockLogger{}))

		if _, err := uc.WellnessIndex(context.Background(), sc, analytics.WellnessIndexInput{}); err != analytics.ErrEmptyContact {
			t.Errorf("expected ErrEmptyContact, got %v", err)
		}
		if _, err := uc.WellnessIndex(context.Background(), sc, analytics.WellnessIndexInput{ContactID: "999"}); err != analytics.ErrUnknownContact {
			t.Errorf("expected ErrUnknownContact, got %v", err)
		}
	})

	t.Run("empty conversation yields the baseline curve", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, memory.New(&mockLogger{}))

		out, err := uc.WellnessIndex(context.Background(), sc, analytics.WellnessIndexInput{ContactID: "1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// sentiment 50 per empty chunk, blended with [20,25,15,30,20]
		want := []float64{35, 37.5, 32.5, 40, 35}
		if len(out.Points) != 5 {
			t.Fatalf("expected 5 points, got %d", len(out.Points))
		}
		for i, p := range out.Points {
			if p.Score != want[i] {
				t.Errorf("point %s: expected %v, got %v", p.Day, want[i], p.Score)
			}
		}
	})

	t.Run("positive chat lifts the matching chunk", func(t *testing.T) {
		repo := memory.New(&mockLogger{})
		base := time.Now().Add(-time.Hour)
		texts := []string{
			"great progress today", // +5 +8 → chunk 1
			"hello there",
			"hello again",
			"feeling bad and sad", // -5 -5 → chunk 4
			"ok",
		}
		for i, text := range texts {
			repo.CreateMessage(context.Background(), model.Message{
				ID:        "m" + string(rune('0'+i)),
				UserID:    "u1",
				ContactID: "1",
				SenderID:  model.SenderSelf,
				Text:      text,
				Type:      model.MessageTypeText,
				Timestamp: base.Add(time.Duration(i) * time.Minute),
			})
		}
		uc := usecase.New(&mockLogger{}, repo)

		out, err := uc.WellnessIndex(context.Background(), sc, analytics.WellnessIndexInput{ContactID: "1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 5 messages → 1 per chunk; sentiment per chunk: 63,50,50,40,50
		want := []float64{41.5, 37.5, 32.5, 35, 35}
		for i, p := range out.Points {
			if p.Score != want[i] {
				t.Errorf("point %s: expected %v, got %v", p.Day, want[i], p.Score)
			}
		}
	})
}
