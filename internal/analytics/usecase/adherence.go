package usecase

import (
	"context"
	"time"

	"neuro-assist/internal/analytics"
	"neuro-assist/internal/model"
)

// RoutineAdherence returns the Mon-Sun adherence series. Only the current
// weekday is computed live; the other six days carry the fixed baselines.
func (uc *implUseCase) RoutineAdherence(ctx context.Context, sc model.Scope) (analytics.RoutineAdherenceOutput, error) {
	routines, err := uc.repo.ListRoutines(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RoutineAdherence ListRoutines: %v", err)
		return analytics.RoutineAdherenceOutput{}, err
	}

	now := time.Now()
	day := now.Format("2006-01-02")
	todayIndex := mondayIndex(now.Weekday())

	var completed, total int
	for _, r := range routines {
		if r.Timestamp.Format("2006-01-02") != day {
			continue
		}
		total++
		if r.Completed {
			completed++
		}
	}
	if total == 0 {
		total = MinLiveTotal
	}

	days := make([]analytics.RoutineDayStat, len(adherenceDays))
	for i, name := range adherenceDays {
		if i == todayIndex {
			days[i] = analytics.RoutineDayStat{Day: name, Completed: completed, Total: total}
			continue
		}
		days[i] = analytics.RoutineDayStat{Day: name, Completed: baselineCompleted[i], Total: baselineTotal}
	}

	return analytics.RoutineAdherenceOutput{Days: days}, nil
}

// mondayIndex maps time.Weekday (Sunday=0) to chart order (Monday=0).
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
