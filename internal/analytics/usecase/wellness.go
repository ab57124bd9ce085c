package usecase

import (
	"context"

	"neuro-assist/internal/analytics"
	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
	"neuro-assist/pkg/sentiment"
)

// WellnessIndex blends per-chunk conversation sentiment with fixed adherence
// constants into one score per weekday.
//
// Messages are split into 5 contiguous equal chunks by list position, not by
// calendar date. This mirrors the chart's approximation of a week; same-day
// grouping is not guaranteed.
func (uc *implUseCase) WellnessIndex(ctx context.Context, sc model.Scope, input analytics.WellnessIndexInput) (analytics.WellnessIndexOutput, error) {
	if input.ContactID == "" {
		return analytics.WellnessIndexOutput{}, analytics.ErrEmptyContact
	}
	if !contactExists(input.ContactID) {
		return analytics.WellnessIndexOutput{}, analytics.ErrUnknownContact
	}

	msgs, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{UserID: sc.UserID, ContactID: input.ContactID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.WellnessIndex ListMessages: %v", err)
		return analytics.WellnessIndexOutput{}, err
	}

	texts := make([]string, len(msgs))
	for i, m := range msgs {
		texts[i] = m.Text
	}

	n := len(texts)
	points := make([]analytics.WellnessPoint, len(wellnessDays))
	for i, name := range wellnessDays {
		chunk := texts[n*i/5 : n*(i+1)/5]
		points[i] = analytics.WellnessPoint{
			Day:   name,
			Score: float64(sentiment.Score(chunk)+wellnessAdherence[i]) / 2,
		}
	}

	return analytics.WellnessIndexOutput{Points: points}, nil
}

func contactExists(id string) bool {
	for _, c := range model.DefaultContacts {
		if c.ID == id {
			return true
		}
	}
	return false
}
