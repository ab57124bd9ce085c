package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	repo "neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
)

func (r *implRepository) CreateRoutine(ctx context.Context, routine model.Routine) (model.Routine, error) {
	const query = `
		INSERT INTO routines (id, user_id, label, emoji, completed, ts)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		routine.ID, routine.UserID, routine.Label, routine.Emoji, routine.Completed, routine.Timestamp)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateRoutine"), err)
		return model.Routine{}, repo.ErrFailedToInsert
	}
	return routine, nil
}

func (r *implRepository) UpdateRoutineCompleted(ctx context.Context, opt repo.UpdateRoutineCompletedOptions) (model.Routine, error) {
	const query = `
		UPDATE routines SET completed = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, label, emoji, completed, ts`

	var routine model.Routine
	err := r.pool.QueryRow(ctx, query, opt.Completed, opt.RoutineID, opt.UserID).Scan(
		&routine.ID, &routine.UserID, &routine.Label, &routine.Emoji, &routine.Completed, &routine.Timestamp,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Routine{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("UpdateRoutineCompleted"), err)
		return model.Routine{}, repo.ErrFailedToUpdate
	}
	return routine, nil
}

func (r *implRepository) ListRoutines(ctx context.Context, userID string) ([]model.Routine, error) {
	const query = `
		SELECT id, user_id, label, emoji, completed, ts
		FROM routines WHERE user_id = $1 ORDER BY ts ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListRoutines"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var routines []model.Routine
	for rows.Next() {
		var routine model.Routine
		if err := rows.Scan(&routine.ID, &routine.UserID, &routine.Label, &routine.Emoji, &routine.Completed, &routine.Timestamp); err != nil {
			return nil, repo.ErrFailedToList
		}
		routines = append(routines, routine)
	}
	return routines, rows.Err()
}

func (r *implRepository) CreateEmotion(ctx context.Context, emotion model.Emotion) (model.Emotion, error) {
	const query = `
		INSERT INTO emotions (id, user_id, label, emoji, intensity, ts)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		emotion.ID, emotion.UserID, emotion.Label, emotion.Emoji, emotion.Intensity, emotion.Timestamp)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateEmotion"), err)
		return model.Emotion{}, repo.ErrFailedToInsert
	}
	return emotion, nil
}

func (r *implRepository) ListEmotions(ctx context.Context, userID string) ([]model.Emotion, error) {
	const query = `
		SELECT id, user_id, label, emoji, intensity, ts
		FROM emotions WHERE user_id = $1 ORDER BY ts ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListEmotions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var emotions []model.Emotion
	for rows.Next() {
		var emotion model.Emotion
		if err := rows.Scan(&emotion.ID, &emotion.UserID, &emotion.Label, &emotion.Emoji, &emotion.Intensity, &emotion.Timestamp); err != nil {
			return nil, repo.ErrFailedToList
		}
		emotions = append(emotions, emotion)
	}
	return emotions, rows.Err()
}

func (r *implRepository) CreateMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	const query = `
		INSERT INTO messages (id, user_id, contact_id, sender_id, text, type, points, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.UserID, msg.ContactID, msg.SenderID, msg.Text, string(msg.Type), msg.Points, msg.Timestamp)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateMessage"), err)
		return model.Message{}, repo.ErrFailedToInsert
	}
	return msg, nil
}

func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]model.Message, error) {
	const query = `
		SELECT id, user_id, contact_id, sender_id, text, type, points, ts
		FROM messages WHERE user_id = $1 AND contact_id = $2 ORDER BY ts ASC`

	rows, err := r.pool.Query(ctx, query, opt.UserID, opt.ContactID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var (
			msg     model.Message
			msgType string
		)
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.ContactID, &msg.SenderID, &msg.Text, &msgType, &msg.Points, &msg.Timestamp); err != nil {
			return nil, repo.ErrFailedToList
		}
		msg.Type = model.MessageType(msgType)
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

func (r *implRepository) SaveDailyQuestions(ctx context.Context, questions []model.DailyQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	userID, day := questions[0].UserID, questions[0].Day

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("SaveDailyQuestions"), err)
		return repo.ErrFailedToInsert
	}
	defer tx.Rollback(ctx)

	// Serialize first-of-day saves per (user, day): concurrent generations
	// must not interleave their rows into one mixed set.
	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1), hashtext($2))`, userID, day); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("SaveDailyQuestions"), err)
		return repo.ErrFailedToInsert
	}

	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM daily_questions WHERE user_id = $1 AND day = $2)`,
		userID, day).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("SaveDailyQuestions"), err)
		return repo.ErrFailedToInsert
	}
	if exists {
		return nil // never regenerate an existing day
	}

	const query = `
		INSERT INTO daily_questions (id, user_id, day, text, emoji, answer, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for i, q := range questions {
		if _, err := tx.Exec(ctx, query, q.ID, q.UserID, q.Day, q.Text, q.Emoji, q.Answer, i); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.op("SaveDailyQuestions"), err)
			return repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("SaveDailyQuestions"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) ListDailyQuestions(ctx context.Context, opt repo.DailyQuestionsOptions) ([]model.DailyQuestion, error) {
	const query = `
		SELECT id, user_id, day, text, emoji, answer
		FROM daily_questions WHERE user_id = $1 AND day = $2 ORDER BY position ASC`

	rows, err := r.pool.Query(ctx, query, opt.UserID, opt.Day)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListDailyQuestions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var questions []model.DailyQuestion
	for rows.Next() {
		var q model.DailyQuestion
		if err := rows.Scan(&q.ID, &q.UserID, &q.Day, &q.Text, &q.Emoji, &q.Answer); err != nil {
			return nil, repo.ErrFailedToList
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *implRepository) AnswerDailyQuestion(ctx context.Context, opt repo.AnswerDailyQuestionOptions) (model.DailyQuestion, error) {
	const query = `
		UPDATE daily_questions SET answer = $1
		WHERE user_id = $2 AND day = $3 AND id = $4
		RETURNING id, user_id, day, text, emoji, answer`

	var q model.DailyQuestion
	err := r.pool.QueryRow(ctx, query, opt.Answer, opt.UserID, opt.Day, opt.QuestionID).Scan(
		&q.ID, &q.UserID, &q.Day, &q.Text, &q.Emoji, &q.Answer,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DailyQuestion{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("AnswerDailyQuestion"), err)
		return model.DailyQuestion{}, repo.ErrFailedToUpdate
	}
	return q, nil
}
