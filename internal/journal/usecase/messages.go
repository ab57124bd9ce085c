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

// SendMessage appends a text message from the user to a conversation.
// Persistence happens after the message value is constructed; a failure
// between the two is returned to the caller, never hidden.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input journal.SendMessageInput) (journal.SendMessageOutput, error) {
	if input.ContactID == "" {
		return journal.SendMessageOutput{}, journal.ErrEmptyContact
	}
	if strings.TrimSpace(input.Text) == "" {
		return journal.SendMessageOutput{}, journal.ErrEmptyMessage
	}
	if !contactExists(input.ContactID) {
		return journal.SendMessageOutput{}, journal.ErrUnknownContact
	}

	msg := model.Message{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		ContactID: input.ContactID,
		SenderID:  model.SenderSelf,
		Text:      input.Text,
		Type:      model.MessageTypeText,
		Timestamp: time.Now(),
	}

	created, err := uc.repo.CreateMessage(ctx, msg)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage CreateMessage: %v", err)
		return journal.SendMessageOutput{}, err
	}

	return journal.SendMessageOutput{Message: created}, nil
}

// ListMessages returns a conversation ordered by timestamp ascending.
func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope, input journal.ListMessagesInput) (journal.ListMessagesOutput, error) {
	if input.ContactID == "" {
		return journal.ListMessagesOutput{}, journal.ErrEmptyContact
	}

	msgs, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		UserID:    sc.UserID,
		ContactID: input.ContactID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMessages: %v", err)
		return journal.ListMessagesOutput{}, err
	}
	return journal.ListMessagesOutput{Messages: msgs}, nil
}

// Contacts returns the fixed contact directory.
func (uc *implUseCase) Contacts(ctx context.Context) []model.Contact {
	return model.DefaultContacts
}

func contactExists(contactID string) bool {
	for _, c := range model.DefaultContacts {
		if c.ID == contactID {
			return true
		}
	}
	return false
}
