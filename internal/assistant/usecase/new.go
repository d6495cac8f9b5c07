package usecase

import (
	"sync"
	"time"

	"financial-assistant/internal/agent"
	"financial-assistant/internal/model"
	"financial-assistant/internal/router"
	"financial-assistant/pkg/fmp"
	"financial-assistant/pkg/llmprovider"
	pkgLog "financial-assistant/pkg/log"
)

// Config holds workflow tuning knobs.
type Config struct {
	SummaryUpdateThreshold int
	MaxHistory             int
	IncomeStatementPeriod  string
	SessionTTL             time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	fmp      fmp.IFMP
	registry *agent.ToolRegistry
	router   router.Router
	cfg      Config

	sessions     map[string]*model.SessionState
	sessionMutex sync.RWMutex
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	fmpClient fmp.IFMP,
	registry *agent.ToolRegistry,
	categoryRouter router.Router,
	cfg Config,
) *implUseCase {
	if cfg.SummaryUpdateThreshold <= 0 {
		cfg.SummaryUpdateThreshold = DefaultSummaryUpdateThreshold
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.IncomeStatementPeriod == "" {
		cfg.IncomeStatementPeriod = fmp.PeriodAnnual
	}

	uc := &implUseCase{
		l:        l,
		llm:      llm,
		fmp:      fmpClient,
		registry: registry,
		router:   categoryRouter,
		cfg:      cfg,
		sessions: make(map[string]*model.SessionState),
	}

	if cfg.SessionTTL > 0 {
		go uc.cleanupExpiredSessions()
	}

	return uc
}
