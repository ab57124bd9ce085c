package http

import "neuro-assist/internal/analytics"

// --- Response DTOs ---

type emotionBucketResp struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type emotionSummaryResp struct {
	Buckets     []emotionBucketResp `json:"buckets"`
	Placeholder bool                `json:"placeholder"`
	Insight     string              `json:"insight"`
}

func (h *handler) newEmotionSummaryResp(out analytics.EmotionSummaryOutput) emotionSummaryResp {
	buckets := make([]emotionBucketResp, len(out.Buckets))
	for i, b := range out.Buckets {
		buckets[i] = emotionBucketResp{Label: b.Label, Count: b.Count, Color: b.Color}
	}
	return emotionSummaryResp{
		Buckets:     buckets,
		Placeholder: out.Placeholder,
		Insight:     out.Insight,
	}
}

type routineDayStatResp struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type routineAdherenceResp struct {
	Days []routineDayStatResp `json:"days"`
}

func (h *handler) newRoutineAdherenceResp(out analytics.RoutineAdherenceOutput) routineAdherenceResp {
	days := make([]routineDayStatResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = routineDayStatResp{Day: d.Day, Completed: d.Completed, Total: d.Total}
	}
	return routineAdherenceResp{Days: days}
}

type wellnessPointResp struct {
	Day   string  `json:"day"`
	Score float64 `json:"score"`
}

type wellnessIndexResp struct {
	Points []wellnessPointResp `json:"points"`
}

func (h *handler) newWellnessIndexResp(out analytics.WellnessIndexOutput) wellnessIndexResp {
	points := make([]wellnessPointResp, len(out.Points))
	for i, p := range out.Points {
		points[i] = wellnessPointResp{Day: p.Day, Score: p.Score}
	}
	return wellnessIndexResp{Points: points}
}
