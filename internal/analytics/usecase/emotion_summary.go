package usecase

import (
	"context"

	"neuro-assist/internal/analytics"
	"neuro-assist/internal/model"
)

// placeholderBuckets is served when no emotions are logged, so the chart is
// never blank. Kept for product parity; see the insufficient-data question
// in DESIGN.md before relying on it elsewhere.
var placeholderBuckets = []analytics.EmotionBucket{
	{Label: "Happy", Count: 4, Color: "#34D399"},
	{Label: "Neutral", Count: 3, Color: "#94A3B8"},
	{Label: "Anxious", Count: 1, Color: "#F87171"},
	{Label: "Excited", Count: 2, Color: "#FBBF24"},
}

// EmotionSummary buckets logged emotions by exact label in first-seen order.
func (uc *implUseCase) EmotionSummary(ctx context.Context, sc model.Scope) (analytics.EmotionSummaryOutput, error) {
	emotions, err := uc.repo.ListEmotions(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.EmotionSummary ListEmotions: %v", err)
		return analytics.EmotionSummaryOutput{}, err
	}

	if len(emotions) == 0 {
		return analytics.EmotionSummaryOutput{
			Buckets:     append([]analytics.EmotionBucket(nil), placeholderBuckets...),
			Placeholder: true,
			Insight:     insightFor(placeholderBuckets),
		}, nil
	}

	index := make(map[string]int)
	var buckets []analytics.EmotionBucket
	for _, e := range emotions {
		if i, ok := index[e.Label]; ok {
			buckets[i].Count++
			continue
		}
		color, ok := emotionColors[e.Label]
		if !ok {
			color = DefaultEmotionColor
		}
		index[e.Label] = len(buckets)
		buckets = append(buckets, analytics.EmotionBucket{Label: e.Label, Count: 1, Color: color})
	}

	return analytics.EmotionSummaryOutput{
		Buckets: buckets,
		Insight: insightFor(buckets),
	}, nil
}

// insightFor classifies the top bucket (max count, first-seen tie-break)
// into one of three canned narratives.
func insightFor(buckets []analytics.EmotionBucket) string {
	if len(buckets) == 0 {
		return InsightNoData
	}

	top := buckets[0]
	for _, b := range buckets[1:] {
		if b.Count > top.Count {
			top = b
		}
	}

	switch {
	case positiveInsightLabels[top.Label]:
		return InsightPositive
	case negativeInsightLabels[top.Label]:
		return InsightNegative
	default:
		return InsightBalanced
	}
}
