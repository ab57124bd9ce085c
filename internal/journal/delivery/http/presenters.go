package http

import (
	"time"

	"neuro-assist/internal/journal"
	"neuro-assist/internal/model"
)

// --- Request DTOs ---

type addRoutineReq struct {
	Label string `json:"label" binding:"required,min=1,max=255"`
	Emoji string `json:"emoji" binding:"max=16"`
}

func (r addRoutineReq) validate() error { return nil }

func (r addRoutineReq) toInput() journal.AddRoutineInput {
	return journal.AddRoutineInput{
		Label: r.Label,
		Emoji: r.Emoji,
	}
}

// ---

type toggleRoutineReq struct {
	ID        string `json:"-"` // populated from URI param
	Completed bool   `json:"completed"`
}

func (r toggleRoutineReq) toInput() journal.ToggleRoutineInput {
	return journal.ToggleRoutineInput{
		ID:        r.ID,
		Completed: r.Completed,
	}
}

// ---

type addEmotionReq struct {
	Label     string `json:"label"     binding:"required,min=1,max=255"`
	Emoji     string `json:"emoji"     binding:"max=16"`
	Intensity int    `json:"intensity"`
}

func (r addEmotionReq) validate() error { return nil }

func (r addEmotionReq) toInput() journal.AddEmotionInput {
	return journal.AddEmotionInput{
		Label:     r.Label,
		Emoji:     r.Emoji,
		Intensity: r.Intensity,
	}
}

// ---

type sendMessageReq struct {
	ContactID string `json:"-"` // populated from URI param
	Text      string `json:"text" binding:"required,min=1,max=4000"`
}

func (r sendMessageReq) toInput() journal.SendMessageInput {
	return journal.SendMessageInput{
		ContactID: r.ContactID,
		Text:      r.Text,
	}
}

// ---

type answerQuestionReq struct {
	QuestionID string `json:"-"` // populated from URI param
	Answer     string `json:"answer" binding:"required,min=1,max=2000"`
}

func (r answerQuestionReq) toInput() journal.AnswerQuestionInput {
	return journal.AnswerQuestionInput{
		QuestionID: r.QuestionID,
		Answer:     r.Answer,
	}
}

// --- Response DTOs ---

type routineResp struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Emoji     string    `json:"emoji"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

func newRoutineResp(r model.Routine) routineResp {
	return routineResp{
		ID:        r.ID,
		Label:     r.Label,
		Emoji:     r.Emoji,
		Completed: r.Completed,
		Timestamp: r.Timestamp,
	}
}

type emotionResp struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Emoji     string    `json:"emoji"`
	Intensity int       `json:"intensity"`
	Timestamp time.Time `json:"timestamp"`
}

func newEmotionResp(e model.Emotion) emotionResp {
	return emotionResp{
		ID:        e.ID,
		Label:     e.Label,
		Emoji:     e.Emoji,
		Intensity: e.Intensity,
		Timestamp: e.Timestamp,
	}
}

type messageResp struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Type      string    `json:"type"`
	Points    int       `json:"points,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:        m.ID,
		ContactID: m.ContactID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Type:      string(m.Type),
		Points:    m.Points,
		Timestamp: m.Timestamp,
	}
}

type contactResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	LastMessage string `json:"last_message"`
}

type questionResp struct {
	ID     string `json:"id"`
	Day    string `json:"day"`
	Text   string `json:"text"`
	Emoji  string `json:"emoji"`
	Answer string `json:"answer,omitempty"`
}

func newQuestionResp(q model.DailyQuestion) questionResp {
	return questionResp{
		ID:     q.ID,
		Day:    q.Day,
		Text:   q.Text,
		Emoji:  q.Emoji,
		Answer: q.Answer,
	}
}

// ---

type routineItemResp struct {
	Routine routineResp `json:"routine"`
}

type routineListResp struct {
	Routines []routineResp `json:"routines"`
}

func (h *handler) newRoutineListResp(out journal.ListRoutinesOutput) routineListResp {
	routines := make([]routineResp, len(out.Routines))
	for i, r := range out.Routines {
		routines[i] = newRoutineResp(r)
	}
	return routineListResp{Routines: routines}
}

type emotionItemResp struct {
	Emotion emotionResp `json:"emotion"`
}

type emotionListResp struct {
	Emotions []emotionResp `json:"emotions"`
}

func (h *handler) newEmotionListResp(out journal.ListEmotionsOutput) emotionListResp {
	emotions := make([]emotionResp, len(out.Emotions))
	for i, e := range out.Emotions {
		emotions[i] = newEmotionResp(e)
	}
	return emotionListResp{Emotions: emotions}
}

type messageItemResp struct {
	Message messageResp `json:"message"`
}

type messageListResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newMessageListResp(out journal.ListMessagesOutput) messageListResp {
	messages := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		messages[i] = newMessageResp(m)
	}
	return messageListResp{Messages: messages}
}

type contactListResp struct {
	Contacts []contactResp `json:"contacts"`
}

func (h *handler) newContactListResp(contacts []model.Contact) contactListResp {
	out := make([]contactResp, len(contacts))
	for i, c := range contacts {
		out[i] = contactResp{
			ID:          c.ID,
			Name:        c.Name,
			Role:        string(c.Role),
			LastMessage: c.LastMessage,
		}
	}
	return contactListResp{Contacts: out}
}

type questionItemResp struct {
	Question questionResp `json:"question"`
}
