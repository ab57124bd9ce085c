package usecase

import (
	"context"
	"strings"
	"time"

	"neuro-assist/internal/journal"
	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
)

// AnswerQuestion sets the answer of one of today's questions. A question can
// only be answered once; later attempts are rejected.
func (uc *implUseCase) AnswerQuestion(ctx context.Context, sc model.Scope, input journal.AnswerQuestionInput) (journal.AnswerQuestionOutput, error) {
	if strings.TrimSpace(input.Answer) == "" {
		return journal.AnswerQuestionOutput{}, journal.ErrEmptyAnswer
	}

	day := dayKey(time.Now())

	questions, err := uc.repo.ListDailyQuestions(ctx, repository.DailyQuestionsOptions{
		UserID: sc.UserID,
		Day:    day,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AnswerQuestion ListDailyQuestions: %v", err)
		return journal.AnswerQuestionOutput{}, err
	}

	var found *model.DailyQuestion
	for i := range questions {
		if questions[i].ID == input.QuestionID {
			found = &questions[i]
			break
		}
	}
	if found == nil {
		return journal.AnswerQuestionOutput{}, journal.ErrQuestionNotFound
	}
	if found.Answer != "" {
		return journal.AnswerQuestionOutput{}, journal.ErrQuestionAnswered
	}

	updated, err := uc.repo.AnswerDailyQuestion(ctx, repository.AnswerDailyQuestionOptions{
		UserID:     sc.UserID,
		Day:        day,
		QuestionID: input.QuestionID,
		Answer:     input.Answer,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AnswerQuestion AnswerDailyQuestion: %v", err)
		return journal.AnswerQuestionOutput{}, err
	}
	if updated.ID == "" {
		return journal.AnswerQuestionOutput{}, journal.ErrQuestionNotFound
	}

	return journal.AnswerQuestionOutput{Question: updated}, nil
}
