package http

import (
	"time"

	"neuro-assist/internal/assistant"
	"neuro-assist/internal/model"
)

// --- Request DTOs ---

type transcriptReq struct {
	Transcript string `json:"transcript" binding:"required,min=1,max=4000"`
}

func (r transcriptReq) toInput() assistant.ProcessTranscriptInput {
	return assistant.ProcessTranscriptInput{Transcript: r.Transcript}
}

// --- Response DTOs ---

type routineResp struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Emoji     string    `json:"emoji"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

type emotionResp struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Emoji     string    `json:"emoji"`
	Intensity int       `json:"intensity"`
	Timestamp time.Time `json:"timestamp"`
}

type transcriptResp struct {
	Intent  string       `json:"intent"`
	Routine *routineResp `json:"routine,omitempty"`
	Emotion *emotionResp `json:"emotion,omitempty"`
	Reply   string       `json:"reply,omitempty"`
}

func (h *handler) newTranscriptResp(out assistant.ProcessTranscriptOutput) transcriptResp {
	resp := transcriptResp{
		Intent: string(out.Intent),
		Reply:  out.Reply,
	}
	if out.Routine != nil {
		resp.Routine = &routineResp{
			ID:        out.Routine.ID,
			Label:     out.Routine.Label,
			Emoji:     out.Routine.Emoji,
			Completed: out.Routine.Completed,
			Timestamp: out.Routine.Timestamp,
		}
	}
	if out.Emotion != nil {
		resp.Emotion = &emotionResp{
			ID:        out.Emotion.ID,
			Label:     out.Emotion.Label,
			Emoji:     out.Emotion.Emoji,
			Intensity: out.Emotion.Intensity,
			Timestamp: out.Emotion.Timestamp,
		}
	}
	return resp
}

type questionResp struct {
	ID     string `json:"id"`
	Day    string `json:"day"`
	Text   string `json:"text"`
	Emoji  string `json:"emoji"`
	Answer string `json:"answer,omitempty"`
}

type questionListResp struct {
	Questions []questionResp `json:"questions"`
}

func (h *handler) newQuestionListResp(questions []model.DailyQuestion) questionListResp {
	out := make([]questionResp, len(questions))
	for i, q := range questions {
		out[i] = questionResp{
			ID:     q.ID,
			Day:    q.Day,
			Text:   q.Text,
			Emoji:  q.Emoji,
			Answer: q.Answer,
		}
	}
	return questionListResp{Questions: out}
}
