package memory

import (
	"context"
	"sort"

	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
)

func (r *implRepository) CreateRoutine(ctx context.Context, routine model.Routine) (model.Routine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.routines[routine.UserID] = append(r.routines[routine.UserID], routine)
	return routine, nil
}

func (r *implRepository) UpdateRoutineCompleted(ctx context.Context, opt repository.UpdateRoutineCompletedOptions) (model.Routine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.routines[opt.UserID]
	for i := range list {
		if list[i].ID == opt.RoutineID {
			list[i].Completed = opt.Completed
			return list[i], nil
		}
	}
	return model.Routine{}, nil // not found → zero value, no error
}

func (r *implRepository) ListRoutines(ctx context.Context, userID string) ([]model.Routine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]model.Routine(nil), r.routines[userID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *implRepository) CreateEmotion(ctx context.Context, emotion model.Emotion) (model.Emotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.emotions[emotion.UserID] = append(r.emotions[emotion.UserID], emotion)
	return emotion, nil
}

func (r *implRepository) ListEmotions(ctx context.Context, userID string) ([]model.Emotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]model.Emotion(nil), r.emotions[userID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *implRepository) CreateMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := conversationKey(msg.UserID, msg.ContactID)
	r.messages[key] = append(r.messages[key], msg)
	return msg, nil
}

func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]model.Message(nil), r.messages[conversationKey(opt.UserID, opt.ContactID)]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *implRepository) SaveDailyQuestions(ctx context.Context, questions []model.DailyQuestion) error {
	if len(questions) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := questionKey(questions[0].UserID, questions[0].Day)
	if len(r.questions[key]) > 0 {
		return nil // never regenerate an existing day
	}
	r.questions[key] = append([]model.DailyQuestion(nil), questions...)
	return nil
}

func (r *implRepository) ListDailyQuestions(ctx context.Context, opt repository.DailyQuestionsOptions) ([]model.DailyQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.DailyQuestion(nil), r.questions[questionKey(opt.UserID, opt.Day)]...), nil
}

func (r *implRepository) AnswerDailyQuestion(ctx context.Context, opt repository.AnswerDailyQuestionOptions) (model.DailyQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.questions[questionKey(opt.UserID, opt.Day)]
	for i := range list {
		if list[i].ID == opt.QuestionID {
			list[i].Answer = opt.Answer
			return list[i], nil
		}
	}
	return model.DailyQuestion{}, nil // not found → zero value, no error
}
