package analytics

// EmotionBucket is one slice of the emotion distribution chart.
type EmotionBucket struct {
	Label string
	Count int
	Color string
}

// EmotionSummaryOutput carries the distribution and its narrative insight.
type EmotionSummaryOutput struct {
	Buckets []EmotionBucket

	// Placeholder is true when no emotions were logged and the fixed
	// demo distribution is being served instead.
	Placeholder bool

	Insight string
}

// RoutineDayStat is one bar of the adherence chart.
type RoutineDayStat struct {
	Day       string
	Completed int
	Total     int
}

// RoutineAdherenceOutput carries the Mon-Sun adherence series.
type RoutineAdherenceOutput struct {
	Days []RoutineDayStat
}

// WellnessIndexInput selects the conversation the index is derived from.
type WellnessIndexInput struct {
	ContactID string
}

// WellnessPoint is one point of the wellness area chart.
type WellnessPoint struct {
	Day   string
	Score float64
}

// WellnessIndexOutput carries the 5-weekday wellness series.
type WellnessIndexOutput struct {
	Points []WellnessPoint
}
