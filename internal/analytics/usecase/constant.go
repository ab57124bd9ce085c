package usecase

// emotionColors maps known emotion labels to chart colors.
var emotionColors = map[string]string{
	"Happy":      "#34D399",
	"Very Happy": "#10B981",
	"Laughing":   "#059669",
	"Sad":        "#60A5FA",
	"Scared":     "#818CF8",
	"Anxious":    "#F87171",
	"Angry":      "#EF4444",
	"Neutral":    "#94A3B8",
	"Peaceful":   "#A78BFA",
}

// DefaultEmotionColor is used for labels missing from the color table.
const DefaultEmotionColor = "#CBD5E1"

// Canned narratives for the top-emotion insight.
const (
	InsightPositive = "Mostly positive emotions! Great week."
	InsightNegative = "Indicates some distress. Review triggers."
	InsightBalanced = "Emotions are balanced and stable."
	InsightNoData   = "No data available yet."
)

// Insight label classification.
var (
	positiveInsightLabels = map[string]bool{"Happy": true, "Very Happy": true}
	negativeInsightLabels = map[string]bool{"Anxious": true, "Sad": true}
)

// weekdays in chart order, Monday first.
var (
	adherenceDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	wellnessDays  = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
)

// Fixed historical baselines for the six non-current weekdays.
var baselineCompleted = [7]int{4, 5, 3, 6, 4, 2, 5}

const baselineTotal = 6

// MinLiveTotal keeps the live bar visible when no routines exist yet.
const MinLiveTotal = 5

// wellnessAdherence is the per-weekday adherence constant blended into the
// wellness score, derived from the Mon-Fri baselines on a 0-100 scale.
var wellnessAdherence = [5]int{20, 25, 15, 30, 20}
