package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"neuro-assist/internal/journal/repository"
	"neuro-assist/internal/model"
	"neuro-assist/pkg/gemini"
	pkgLog "neuro-assist/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  *gemini.Client
	repo repository.Repository

	// questionCache keeps a day's generated questions hot so repeated
	// dashboard loads do not hit storage. Keyed userID|day.
	questionCache *expirable.LRU[string, []model.DailyQuestion]
}

// New creates a new assistant UseCase instance.
func New(l pkgLog.Logger, llm *gemini.Client, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		llm:  llm,
		repo: repo,
		questionCache: expirable.NewLRU[string, []model.DailyQuestion](
			1024,          // max cached user-days
			nil,           // no eviction callback
			time.Hour*24,  // a day's set is stale after the day
		),
	}
}
