package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
	"neuro-assist/internal/report"
	"neuro-assist/pkg/gemini"
	"neuro-assist/pkg/sentiment"
)

// feedbackResult is the wire shape returned by the language service.
type feedbackResult struct {
	Text   string  `json:"text"`
	Points float64 `json:"points"`
}

// CompleteDay synthesizes the day's caregiver report and persists it as a
// feedback message from the therapist.
func (uc *implUseCase) CompleteDay(ctx context.Context, sc model.Scope, input report.CompleteDayInput) (report.CompleteDayOutput, error) {
	therapist, err := resolveTherapist(input.TherapistID)
	if err != nil {
		return report.CompleteDayOutput{}, err
	}

	now := time.Now()
	guardKey := sc.UserID + "|" + now.Format("2006-01-02")

	if err := uc.acquireDay(guardKey); err != nil {
		return report.CompleteDayOutput{}, err
	}

	// A report delivered on a previous run also counts as completion.
	delivered, err := uc.deliveredToday(ctx, sc.UserID, therapist.ID, now)
	if err != nil {
		uc.releaseDay(guardKey, false)
		uc.l.Errorf(ctx, "uc.CompleteDay deliveredToday: %v", err)
		return report.CompleteDayOutput{}, err
	}
	if delivered {
		uc.releaseDay(guardKey, true)
		return report.CompleteDayOutput{}, report.ErrDayAlreadyCompleted
	}

	summary, err := uc.buildDaySummary(ctx, sc.UserID, now)
	if err != nil {
		uc.releaseDay(guardKey, false)
		uc.l.Errorf(ctx, "uc.CompleteDay buildDaySummary: %v", err)
		return report.CompleteDayOutput{}, err
	}

	rep := uc.synthesize(ctx, summary)

	msg, err := uc.repo.CreateMessage(ctx, model.Message{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		ContactID: therapist.ID,
		SenderID:  therapist.ID,
		Text:      rep.Text,
		Type:      model.MessageTypeFeedback,
		Points:    rep.Points,
		Timestamp: now,
	})
	if err != nil {
		uc.releaseDay(guardKey, false)
		uc.l.Errorf(ctx, "uc.CompleteDay CreateMessage: %v", err)
		return report.CompleteDayOutput{}, err
	}

	uc.releaseDay(guardKey, true)
	uc.l.Infof(ctx, "uc.CompleteDay delivered report to contact %s, points=%d", therapist.ID, rep.Points)
	return report.CompleteDayOutput{Report: rep, Message: msg}, nil
}

// acquireDay claims a user-day for completion. Fails when the day was
// already completed or another completion is in flight.
func (uc *implUseCase) acquireDay(key string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, done := uc.completed.Get(key); done {
		return report.ErrDayAlreadyCompleted
	}
	if uc.inflight[key] {
		return report.ErrDayAlreadyCompleted
	}
	uc.inflight[key] = true
	return nil
}

// releaseDay releases the in-flight claim, marking the day completed on
// success so retries after failure stay possible.
func (uc *implUseCase) releaseDay(key string, success bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	delete(uc.inflight, key)
	if success {
		uc.completed.Add(key, true)
	}
}

// deliveredToday reports whether a feedback message already exists in the
// therapist conversation for the given day. Makes the guard survive restarts
// when a durable store backs the repository.
func (uc *implUseCase) deliveredToday(ctx context.Context, userID, contactID string, now time.Time) (bool, error) {
	msgs, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{UserID: userID, ContactID: contactID})
	if err != nil {
		return false, err
	}
	day := now.Format("2006-01-02")
	for _, m := range msgs {
		if m.Type == model.MessageTypeFeedback && m.Timestamp.Format("2006-01-02") == day {
			return true, nil
		}
	}
	return false, nil
}

// daySummary is the structured activity log fed to the synthesizer.
type daySummary struct {
	completed  string
	missed     string
	emotionLog string
	qa         string
}

func (uc *implUseCase) buildDaySummary(ctx context.Context, userID string, now time.Time) (daySummary, error) {
	day := now.Format("2006-01-02")

	routines, err := uc.repo.ListRoutines(ctx, userID)
	if err != nil {
		return daySummary{}, err
	}
	emotions, err := uc.repo.ListEmotions(ctx, userID)
	if err != nil {
		return daySummary{}, err
	}
	questions, err := uc.repo.ListDailyQuestions(ctx, repository.DailyQuestionsOptions{UserID: userID, Day: day})
	if err != nil {
		return daySummary{}, err
	}

	var completed, missed []string
	for _, r := range routines {
		if r.Timestamp.Format("2006-01-02") != day {
			continue
		}
		if r.Completed {
			completed = append(completed, r.Label)
		} else {
			missed = append(missed, r.Label)
		}
	}

	var emotionLog []string
	for _, e := range emotions {
		if e.Timestamp.Format("2006-01-02") != day {
			continue
		}
		emotionLog = append(emotionLog, e.Label+" ("+e.Emoji+")")
	}

	var qa []string
	for _, q := range questions {
		answer := q.Answer
		if answer == "" {
			answer = "No answer"
		}
		qa = append(qa, `Q: "`+q.Text+`" A: "`+answer+`"`)
	}

	return daySummary{
		completed:  orNone(strings.Join(completed, ", ")),
		missed:     orNone(strings.Join(missed, ", ")),
		emotionLog: orNone(strings.Join(emotionLog, ", ")),
		qa:         strings.Join(qa, "; "),
	}, nil
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// synthesize produces the report. The function is total: every failure of
// the external call routes to a canned report.
func (uc *implUseCase) synthesize(ctx context.Context, summary daySummary) model.FeedbackReport {
	if !uc.llm.Configured() {
		return model.FeedbackReport{Text: NoCredentialReportText, Points: NoCredentialPoints}
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.BuildFeedbackPrompt(
				summary.completed, summary.missed, summary.emotionLog, summary.qa,
			)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      FeedbackTemperature,
			MaxOutputTokens:  FeedbackMaxTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   gemini.FeedbackResponseSchema(),
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "synthesize: LLM call failed, using fallback report: %v", err)
		return model.FeedbackReport{Text: FallbackReportText, Points: FallbackPoints}
	}

	text, err := resp.FirstText()
	if err != nil {
		uc.l.Warnf(ctx, "synthesize: %v, using fallback report", err)
		return model.FeedbackReport{Text: FallbackReportText, Points: FallbackPoints}
	}

	var result feedbackResult
	if err := json.Unmarshal([]byte(gemini.SanitizeJSON(text)), &result); err != nil || result.Text == "" {
		uc.l.Warnf(ctx, "synthesize: failed to parse LLM response %q, using fallback report: %v", text, err)
		return model.FeedbackReport{Text: FallbackReportText, Points: FallbackPoints}
	}

	return model.FeedbackReport{
		Text:   result.Text,
		Points: sentiment.Clamp(int(result.Points), 0, 100),
	}
}

func resolveTherapist(id string) (model.Contact, error) {
	if id == "" {
		for _, c := range model.DefaultContacts {
			if c.Role == model.RoleTherapist {
				return c, nil
			}
		}
		return model.Contact{}, report.ErrUnknownTherapist
	}
	for _, c := range model.DefaultContacts {
		if c.ID == id && c.Role == model.RoleTherapist {
			return c, nil
		}
	}
	return model.Contact{}, report.ErrUnknownTherapist
}
