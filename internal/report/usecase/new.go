package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"neuro-assist/internal/journal/repository"
	"neuro-assist/pkg/gemini"
	pkgLog "neuro-assist/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  *gemini.Client
	repo repository.Repository

	// Day-completion guard. completed remembers finished user-days so a
	// second completion is rejected; inflight serializes concurrent first
	// attempts for the same user-day.
	mu        sync.Mutex
	inflight  map[string]bool
	completed *expirable.LRU[string, bool]
}

// New creates a new report UseCase instance.
func New(l pkgLog.Logger, llm *gemini.Client, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		inflight: make(map[string]bool),
		completed: expirable.NewLRU[string, bool](
			4096,
			nil,
			time.Hour*48, // completed marks outlive the day they guard
		),
	}
}
