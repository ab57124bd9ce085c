package http

import (
	"time"

	"neuro-assist/internal/report"
)

// --- Request DTOs ---

type completeDayReq struct {
	// TherapistID selects the receiving therapist; empty picks the first
	// therapist in the contact directory.
	TherapistID string `json:"therapist_id"`
}

func (r completeDayReq) toInput() report.CompleteDayInput {
	return report.CompleteDayInput{TherapistID: r.TherapistID}
}

// --- Response DTOs ---

type completeDayResp struct {
	Text      string    `json:"text"`
	Points    int       `json:"points"`
	MessageID string    `json:"message_id"`
	ContactID string    `json:"contact_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *handler) newCompleteDayResp(out report.CompleteDayOutput) completeDayResp {
	return completeDayResp{
		Text:      out.Report.Text,
		Points:    out.Report.Points,
		MessageID: out.Message.ID,
		ContactID: out.Message.ContactID,
		Timestamp: out.Message.Timestamp,
	}
}
