package usecase

// Fallback classification values used when the language service cannot be
// trusted or reached.
const (
	FallbackRoutineLabel = "New Task"
	FallbackRoutineEmoji = "📝"
	FallbackEmotionLabel = "Emotion"
	FallbackEmotionEmoji = "😐"
	FallbackReply        = "I hear you."
)

// affectKeywords route a transcript to ADD_EMOTION in the fallback heuristic.
var affectKeywords = []string{"sad", "happy", "angry"}

// DefaultEmotionIntensity is assigned to emotions logged via classification;
// the transcript carries no intensity signal.
const DefaultEmotionIntensity = 3

// Generation settings.
const (
	ClassifyTemperature  = 0.2 // low temperature for deterministic JSON output
	QuestionsTemperature = 0.7
	ClassifyMaxTokens    = 512
	QuestionsMaxTokens   = 1024
)

// fallbackQuestion is one entry of a fixed built-in question set.
type fallbackQuestion struct {
	ID    string
	Text  string
	Emoji string
}

// noCredentialQuestions is served when no API key is configured.
var noCredentialQuestions = []fallbackQuestion{
	{ID: "1", Text: "How did you sleep last night?", Emoji: "😴"},
	{ID: "2", Text: "What is making you happy today?", Emoji: "😊"},
}

// fallbackQuestions is served when generation fails mid-flight.
var fallbackQuestions = []fallbackQuestion{
	{ID: "1", Text: "How are you feeling right now?", Emoji: "🤔"},
	{ID: "2", Text: "Did anything make you upset today?", Emoji: "🌧️"},
}
