package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"neuro-assist/internal/journal"
	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
)

// AddRoutine creates a new uncompleted routine for the user.
func (uc *implUseCase) AddRoutine(ctx context.Context, sc model.Scope, input journal.AddRoutineInput) (journal.AddRoutineOutput, error) {
	if strings.TrimSpace(input.Label) == "" {
		return journal.AddRoutineOutput{}, journal.ErrEmptyLabel
	}

	routine := model.Routine{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Label:     input.Label,
		Emoji:     input.Emoji,
		Completed: false,
		Timestamp: time.Now(),
	}

	created, err := uc.repo.CreateRoutine(ctx, routine)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddRoutine CreateRoutine: %v", err)
		return journal.AddRoutineOutput{}, err
	}

	uc.l.Infof(ctx, "AddRoutine: user=%s routine=%s label=%q", sc.UserID, created.ID, created.Label)
	return journal.AddRoutineOutput{Routine: created}, nil
}

// ToggleRoutine marks a routine completed or uncompleted.
func (uc *implUseCase) ToggleRoutine(ctx context.Context, sc model.Scope, input journal.ToggleRoutineInput) (journal.ToggleRoutineOutput, error) {
	updated, err := uc.repo.UpdateRoutineCompleted(ctx, repository.UpdateRoutineCompletedOptions{
		UserID:    sc.UserID,
		RoutineID: input.ID,
		Completed: input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleRoutine UpdateRoutineCompleted: %v", err)
		return journal.ToggleRoutineOutput{}, err
	}
	if updated.ID == "" {
		return journal.ToggleRoutineOutput{}, journal.ErrRoutineNotFound
	}

	return journal.ToggleRoutineOutput{Routine: updated}, nil
}

// ListRoutines returns all routines for the user.
func (uc *implUseCase) ListRoutines(ctx context.Context, sc model.Scope) (journal.ListRoutinesOutput, error) {
	routines, err := uc.repo.ListRoutines(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRoutines: %v", err)
		return journal.ListRoutinesOutput{}, err
	}
	return journal.ListRoutinesOutput{Routines: routines}, nil
}
