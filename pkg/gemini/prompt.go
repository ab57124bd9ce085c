package gemini

import "fmt"

// IntentSystemPrompt is the instruction sent to Gemini for transcript intent
// classification.
const IntentSystemPrompt = `You are an assistant for a neurodivergent individual.
Analyze the user's spoken input: %q.

Determine the intent:
1. 'ADD_ROUTINE': User wants to do something (e.g., "I need to eat breakfast", "Walk the dog").
2. 'ADD_EMOTION': User is expressing feelings (e.g., "I am sad", "I feel happy").
3. 'ANSWER': User is just chatting or answering a question.

Return JSON.
If intent is ADD_ROUTINE, provide a short label and a matching emoji.
If intent is ADD_EMOTION, provide a label (Happy, Sad, Angry, etc.) and emoji.
If intent is ANSWER, provide the text as the 'reply'.`

// BuildIntentPrompt builds the full prompt for intent classification.
func BuildIntentPrompt(transcript string) string {
	return fmt.Sprintf(IntentSystemPrompt, transcript)
}

// IntentResponseSchema constrains the classification response to the
// {intent,label,emoji,reply} shape.
func IntentResponseSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"intent": map[string]any{
				"type": "STRING",
				"enum": []string{"ADD_ROUTINE", "ADD_EMOTION", "ANSWER"},
			},
			"label": map[string]any{"type": "STRING"},
			"emoji": map[string]any{"type": "STRING"},
			"reply": map[string]any{
				"type":        "STRING",
				"description": "The content of the answer or a reply.",
			},
		},
		"required": []string{"intent"},
	}
}

// DailyQuestionsPrompt asks for 2-3 short check-in questions.
const DailyQuestionsPrompt = `Generate 2 or 3 simple, friendly, short questions for a neurodivergent individual (child or adult) that will help a therapist understand their daily mental health status (e.g. sleep, anxiety, mood, social interaction). Return a JSON array of objects with 'id', 'text', and 'emoji'.`

// DailyQuestionsResponseSchema constrains the generated question set.
func DailyQuestionsResponseSchema() map[string]any {
	return map[string]any{
		"type": "ARRAY",
		"items": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"id":    map[string]any{"type": "STRING"},
				"text":  map[string]any{"type": "STRING"},
				"emoji": map[string]any{"type": "STRING"},
			},
			"required": []string{"id", "text", "emoji"},
		},
	}
}

// FeedbackSystemPrompt is the instruction for end-of-day caregiver feedback.
// Placeholders: completed routines, missed routines, emotion log, Q&A pairs.
const FeedbackSystemPrompt = `You are a professional, compassionate therapist for a neurodivergent individual.
Analyze the following daily activity log to provide feedback to the parent/guardian.

Data:
- Completed Routines: %s
- Missed Routines: %s
- Emotions Logged: %s
- Daily Questions & Answers: %s

Task:
1. Write a short, encouraging, and insightful message to the parent. Mention specific wins or areas to focus on based on the data.
2. Assign "Points" (0-100) based on the level of engagement and completion.

Return JSON: { "text": "string", "points": number }`

// BuildFeedbackPrompt builds the full prompt for feedback synthesis.
func BuildFeedbackPrompt(completed, missed, emotionLog, qa string) string {
	return fmt.Sprintf(FeedbackSystemPrompt, completed, missed, emotionLog, qa)
}

// FeedbackResponseSchema constrains the feedback response to {text,points}.
func FeedbackResponseSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"text":   map[string]any{"type": "STRING"},
			"points": map[string]any{"type": "NUMBER"},
		},
		"required": []string{"text", "points"},
	}
}
