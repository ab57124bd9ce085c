package usecase

import (
	"context"
	"encoding/json"
	"time"

	"neuro-assist/internal/assistant"
	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
	"neuro-assist/pkg/gemini"
)

// questionResult is the wire shape of one generated question.
type questionResult struct {
	ID    json.Number `json:"id"`
	Text  string      `json:"text"`
	Emoji string      `json:"emoji"`
}

// DailyQuestions returns the question set for the scope's current day,
// generating and persisting it on first access.
func (uc *implUseCase) DailyQuestions(ctx context.Context, sc model.Scope) (assistant.DailyQuestionsOutput, error) {
	day := dayKey(time.Now())
	cacheKey := sc.UserID + "|" + day

	if cached, ok := uc.questionCache.Get(cacheKey); ok {
		return assistant.DailyQuestionsOutput{Questions: cached}, nil
	}

	stored, err := uc.repo.ListDailyQuestions(ctx, repository.DailyQuestionsOptions{UserID: sc.UserID, Day: day})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DailyQuestions ListDailyQuestions: %v", err)
		return assistant.DailyQuestionsOutput{}, err
	}
	if len(stored) > 0 {
		uc.questionCache.Add(cacheKey, stored)
		return assistant.DailyQuestionsOutput{Questions: stored}, nil
	}

	questions := uc.generateQuestions(ctx, sc.UserID, day)

	if err := uc.repo.SaveDailyQuestions(ctx, questions); err != nil {
		uc.l.Errorf(ctx, "uc.DailyQuestions SaveDailyQuestions: %v", err)
		return assistant.DailyQuestionsOutput{}, err
	}

	// Re-read so concurrent first accesses converge on one stored set.
	saved, err := uc.repo.ListDailyQuestions(ctx, repository.DailyQuestionsOptions{UserID: sc.UserID, Day: day})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DailyQuestions ListDailyQuestions after save: %v", err)
		return assistant.DailyQuestionsOutput{}, err
	}

	uc.questionCache.Add(cacheKey, saved)
	return assistant.DailyQuestionsOutput{Questions: saved}, nil
}

// generateQuestions asks the language service for 2-3 check-in questions.
// Without a credential the canned set is served; a failed generation serves
// the error set instead.
func (uc *implUseCase) generateQuestions(ctx context.Context, userID, day string) []model.DailyQuestion {
	if !uc.llm.Configured() {
		return questionSet(noCredentialQuestions, userID, day)
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.DailyQuestionsPrompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      QuestionsTemperature,
			MaxOutputTokens:  QuestionsMaxTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   gemini.DailyQuestionsResponseSchema(),
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "generateQuestions: LLM call failed, using fallback set: %v", err)
		return questionSet(fallbackQuestions, userID, day)
	}

	text, err := resp.FirstText()
	if err != nil {
		uc.l.Warnf(ctx, "generateQuestions: %v, using fallback set", err)
		return questionSet(fallbackQuestions, userID, day)
	}

	var results []questionResult
	if err := json.Unmarshal([]byte(gemini.SanitizeJSON(text)), &results); err != nil {
		uc.l.Warnf(ctx, "generateQuestions: failed to parse LLM response %q, using fallback set: %v", text, err)
		return questionSet(fallbackQuestions, userID, day)
	}
	if len(results) < 2 || len(results) > 3 {
		uc.l.Warnf(ctx, "generateQuestions: got %d questions, using fallback set", len(results))
		return questionSet(fallbackQuestions, userID, day)
	}

	questions := make([]model.DailyQuestion, 0, len(results))
	for _, r := range results {
		if r.Text == "" {
			uc.l.Warnf(ctx, "generateQuestions: question with empty text, using fallback set")
			return questionSet(fallbackQuestions, userID, day)
		}
		questions = append(questions, model.DailyQuestion{
			ID:     r.ID.String(),
			UserID: userID,
			Day:    day,
			Text:   r.Text,
			Emoji:  r.Emoji,
		})
	}

	uc.l.Infof(ctx, "generateQuestions: generated %d questions for day %s", len(questions), day)
	return questions
}

func questionSet(set []fallbackQuestion, userID, day string) []model.DailyQuestion {
	questions := make([]model.DailyQuestion, 0, len(set))
	for _, q := range set {
		questions = append(questions, model.DailyQuestion{
			ID:     q.ID,
			UserID: userID,
			Day:    day,
			Text:   q.Text,
			Emoji:  q.Emoji,
		})
	}
	return questions
}
