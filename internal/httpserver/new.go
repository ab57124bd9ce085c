package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"neuro-assist/config"
	"neuro-assist/internal/journal/repository"
	"neuro-assist/pkg/gemini"
	"neuro-assist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared domain dependencies
	repo      repository.Repository
	llm       *gemini.Client
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Repo is the journal store selected at startup (memory or postgres).
	Repo repository.Repository

	// LLM is the shared Gemini client. A client without an API key is
	// valid; every domain degrades to its local fallback.
	LLM *gemini.Client

	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		repo:        cfg.Repo,
		llm:         cfg.LLM,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	if srv.llm == nil {
		return errors.New("gemini client is required")
	}
	return nil
}
