package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/journal/repository/memory"
	"neuro-assist/internal/model"
	"neuro-assist/internal/report"
	"neuro-assist/internal/report/usecase"
	"neuro-assist/pkg/gemini"
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

func feedbackServer(t *testing.T, text string, points float64, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		inner, _ := json.Marshal(map[string]any{"text": text, "points": points})
		body, _ := json.Marshal(string(inner))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + string(body) + `}]}}]}`))
	}))
}

func seedDay(t *testing.T, repo repository.Repository, userID string) {
	t.Helper()
	now := time.Now()
	ctx := context.Background()

	repo.CreateRoutine(ctx, model.Routine{ID: "r1", UserID: userID, Label: "Brush teeth", Emoji: "🪥", Completed: true, Timestamp: now})
	repo.CreateRoutine(ctx, model.Routine{ID: "r2", UserID: userID, Label: "Pack bag", Emoji: "🎒", Completed: false, Timestamp: now})
	repo.CreateEmotion(ctx, model.Emotion{ID: "e1", UserID: userID, Label: "Happy", Emoji: "😊", Intensity: 4, Timestamp: now})
	repo.SaveDailyQuestions(ctx, []model.DailyQuestion{
		{ID: "1", UserID: userID, Day: now.Format("2006-01-02"), Text: "How did you sleep?", Emoji: "😴", Answer: "Well"},
		{ID: "2", UserID: userID, Day: now.Format("2006-01-02"), Text: "Anything worrying you?", Emoji: "💭"},
	})
}

func TestCompleteDay(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("synthesizes and delivers the report", func(t *testing.T) {
		ts := feedbackServer(t, "Great engagement today. Keep up the morning wins!", 85, http.StatusOK)
		defer ts.Close()

		llm := gemini.NewClient("test-key")
		llm.SetAPIURL(ts.URL)
		repo := memory.New(&mockLogger{})
		seedDay(t, repo, "u1")
		uc := usecase.New(&mockLogger{}, llm, repo)

		out, err := uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Report.Points != 85 {
			t.Errorf("expected points 85, got %d", out.Report.Points)
		}
		if out.Message.Type != model.MessageTypeFeedback {
			t.Errorf("expected feedback message, got %s", out.Message.Type)
		}
		if out.Message.SenderID == model.SenderSelf {
			t.Errorf("report must come from the therapist, not the user")
		}

		msgs, _ := repo.ListMessages(context.Background(), repository.ListMessagesOptions{UserID: "u1", ContactID: out.Message.ContactID})
		if len(msgs) != 1 {
			t.Errorf("expected 1 persisted message, got %d", len(msgs))
		}
	})

	t.Run("clamps out-of-range points", func(t *testing.T) {
		cases := []struct {
			points float64
			want   int
		}{
			{500, 100},
			{-50, 0},
			{42, 42},
		}
		for _, tc := range cases {
			ts := feedbackServer(t, "ok", tc.points, http.StatusOK)
			llm := gemini.NewClient("test-key")
			llm.SetAPIURL(ts.URL)
			repo := memory.New(&mockLogger{})
			uc := usecase.New(&mockLogger{}, llm, repo)

			out, err := uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{})
			ts.Close()
			if err != nil {
				t.Fatalf("points %v: unexpected error: %v", tc.points, err)
			}
			if out.Report.Points != tc.want {
				t.Errorf("points %v: expected %d, got %d", tc.points, tc.want, out.Report.Points)
			}
		}
	})

	t.Run("second completion is rejected", func(t *testing.T) {
		ts := feedbackServer(t, "ok", 70, http.StatusOK)
		defer ts.Close()

		llm := gemini.NewClient("test-key")
		llm.SetAPIURL(ts.URL)
		repo := memory.New(&mockLogger{})
		uc := usecase.New(&mockLogger{}, llm, repo)

		if _, err := uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{}); err != report.ErrDayAlreadyCompleted {
			t.Errorf("expected ErrDayAlreadyCompleted, got %v", err)
		}
	})

	t.Run("guard survives a new usecase over the same store", func(t *testing.T) {
		ts := feedbackServer(t, "ok", 70, http.StatusOK)
		defer ts.Close()

		llm := gemini.NewClient("test-key")
		llm.SetAPIURL(ts.URL)
		repo := memory.New(&mockLogger{})

		if _, err := usecase.New(&mockLogger{}, llm, repo).CompleteDay(context.Background(), sc, report.CompleteDayInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// fresh instance, same repository: the stored feedback message blocks a rerun
		if _, err := usecase.New(&mockLogger{}, llm, repo).CompleteDay(context.Background(), sc, report.CompleteDayInput{}); err != report.ErrDayAlreadyCompleted {
			t.Errorf("expected ErrDayAlreadyCompleted, got %v", err)
		}
	})

	t.Run("LLM failure still delivers exactly one report", func(t *testing.T) {
		ts := feedbackServer(t, "", 0, http.StatusInternalServerError)
		defer ts.Close()

		llm := gemini.NewClient("test-key")
		llm.SetAPIURL(ts.URL)
		repo := memory.New(&mockLogger{})
		seedDay(t, repo, "u1")
		uc := usecase.New(&mockLogger{}, llm, repo)

		out, err := uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Report.Text != "Activity log received. Great job today!" || out.Report.Points != 20 {
			t.Errorf("unexpected fallback report: %+v", out.Report)
		}

		msgs, _ := repo.ListMessages(context.Background(), repository.ListMessagesOptions{UserID: "u1", ContactID: out.Message.ContactID})
		if len(msgs) != 1 {
			t.Errorf("expected exactly 1 persisted report, got %d", len(msgs))
		}

		if _, err := uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{}); err != report.ErrDayAlreadyCompleted {
			t.Errorf("expected ErrDayAlreadyCompleted after fallback delivery, got %v", err)
		}
	})

	t.Run("no API key delivers the canned report", func(t *testing.T) {
		repo := memory.New(&mockLogger{})
		uc := usecase.New(&mockLogger{}, gemini.NewClient(""), repo)

		out, err := uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Report.Points != 50 {
			t.Errorf("expected points 50 without credential, got %d", out.Report.Points)
		}
	})

	t.Run("unknown therapist is rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, gemini.NewClient(""), memory.New(&mockLogger{}))

		_, err := uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{TherapistID: "999"})
		if err != report.ErrUnknownTherapist {
			t.Errorf("expected ErrUnknownTherapist, got %v", err)
		}
		// a parent contact cannot receive the therapist report either
		_, err = uc.CompleteDay(context.Background(), sc, report.CompleteDayInput{TherapistID: "3"})
		if err != report.ErrUnknownTherapist {
			t.Errorf("expected ErrUnknownTherapist for parent contact, got %v", err)
		}
	})
}
