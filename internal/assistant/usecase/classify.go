package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"neuro-assist/internal/assistant"
	"neuro-assist/internal/model"
	"neuro-assist/pkg/gemini"
)

// intentResult is the wire shape returned by the language service.
type intentResult struct {
	Intent string `json:"intent"`
	Label  string `json:"label"`
	Emoji  string `json:"emoji"`
	Reply  string `json:"reply"`
}

// ProcessTranscript classifies a transcript and persists the derived record.
func (uc *implUseCase) ProcessTranscript(ctx context.Context, sc model.Scope, input assistant.ProcessTranscriptInput) (assistant.ProcessTranscriptOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return assistant.ProcessTranscriptOutput{}, assistant.ErrEmptyTranscript
	}

	result := uc.classify(ctx, input.Transcript)

	switch assistant.Intent(result.Intent) {
	case assistant.IntentAddEmotion:
		emotion := model.Emotion{
			ID:        uuid.NewString(),
			UserID:    sc.UserID,
			Label:     result.Label,
			Emoji:     result.Emoji,
			Intensity: DefaultEmotionIntensity,
			Timestamp: time.Now(),
		}
		created, err := uc.repo.CreateEmotion(ctx, emotion)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ProcessTranscript CreateEmotion: %v", err)
			return assistant.ProcessTranscriptOutput{}, err
		}
		return assistant.ProcessTranscriptOutput{
			Intent:  assistant.IntentAddEmotion,
			Emotion: &created,
		}, nil

	case assistant.IntentAnswer:
		reply := result.Reply
		if reply == "" {
			reply = FallbackReply
		}
		return assistant.ProcessTranscriptOutput{
			Intent: assistant.IntentAnswer,
			Reply:  reply,
		}, nil

	default: // ADD_ROUTINE
		routine := model.Routine{
			ID:        uuid.NewString(),
			UserID:    sc.UserID,
			Label:     result.Label,
			Emoji:     result.Emoji,
			Completed: false,
			Timestamp: time.Now(),
		}
		created, err := uc.repo.CreateRoutine(ctx, routine)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ProcessTranscript CreateRoutine: %v", err)
			return assistant.ProcessTranscriptOutput{}, err
		}
		return assistant.ProcessTranscriptOutput{
			Intent:  assistant.IntentAddRoutine,
			Routine: &created,
		}, nil
	}
}

// classify maps a transcript to an intentResult. The function is total:
// every failure of the external call routes to the local heuristic.
func (uc *implUseCase) classify(ctx context.Context, transcript string) intentResult {
	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.BuildIntentPrompt(transcript)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      ClassifyTemperature,
			MaxOutputTokens:  ClassifyMaxTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   gemini.IntentResponseSchema(),
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "classify: LLM call failed, using fallback: %v", err)
		return fallbackIntent(transcript)
	}

	text, err := resp.FirstText()
	if err != nil {
		uc.l.Warnf(ctx, "classify: %v, using fallback", err)
		return fallbackIntent(transcript)
	}

	var result intentResult
	if err := json.Unmarshal([]byte(gemini.SanitizeJSON(text)), &result); err != nil {
		uc.l.Warnf(ctx, "classify: failed to parse LLM response %q, using fallback: %v", text, err)
		return fallbackIntent(transcript)
	}
	if !validIntent(result.Intent) {
		uc.l.Warnf(ctx, "classify: unknown intent %q, using fallback", result.Intent)
		return fallbackIntent(transcript)
	}

	uc.l.Infof(ctx, "classify: intent=%s label=%q", result.Intent, result.Label)
	return result
}

func validIntent(intent string) bool {
	switch assistant.Intent(intent) {
	case assistant.IntentAddRoutine, assistant.IntentAddEmotion, assistant.IntentAnswer:
		return true
	}
	return false
}

// fallbackIntent is the deterministic local classifier: affect keywords map
// to ADD_EMOTION, everything else to ADD_ROUTINE.
func fallbackIntent(transcript string) intentResult {
	lower := strings.ToLower(transcript)
	for _, kw := range affectKeywords {
		if strings.Contains(lower, kw) {
			return intentResult{
				Intent: string(assistant.IntentAddEmotion),
				Label:  FallbackEmotionLabel,
				Emoji:  FallbackEmotionEmoji,
				Reply:  FallbackReply,
			}
		}
	}
	return intentResult{
		Intent: string(assistant.IntentAddRoutine),
		Label:  FallbackRoutineLabel,
		Emoji:  FallbackRoutineEmoji,
		Reply:  "Added to your list.",
	}
}
