package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"neuro-assist/internal/journal"
	"neuro-assist/internal/model"
)

// AddEmotion logs an emotional state for the user.
func (uc *implUseCase) AddEmotion(ctx context.Context, sc model.Scope, input journal.AddEmotionInput) (journal.AddEmotionOutput, error) {
	if strings.TrimSpace(input.Label) == "" {
		return journal.AddEmotionOutput{}, journal.ErrEmptyLabel
	}
	if input.Intensity < 1 || input.Intensity > 5 {
		return journal.AddEmotionOutput{}, journal.ErrInvalidIntensity
	}

	emotion := model.Emotion{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Label:     input.Label,
		Emoji:     input.Emoji,
		Intensity: input.Intensity,
		Timestamp: time.Now(),
	}

	created, err := uc.repo.CreateEmotion(ctx, emotion)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddEmotion CreateEmotion: %v", err)
		return journal.AddEmotionOutput{}, err
	}

	uc.l.Infof(ctx, "AddEmotion: user=%s emotion=%s label=%q", sc.UserID, created.ID, created.Label)
	return journal.AddEmotionOutput{Emotion: created}, nil
}

// ListEmotions returns all logged emotions for the user.
func (uc *implUseCase) ListEmotions(ctx context.Context, sc model.Scope) (journal.ListEmotionsOutput, error) {
	emotions, err := uc.repo.ListEmotions(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEmotions: %v", err)
		return journal.ListEmotionsOutput{}, err
	}
	return journal.ListEmotionsOutput{Emotions: emotions}, nil
}
