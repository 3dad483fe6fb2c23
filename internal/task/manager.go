package task

import (
	"github.com/takvimhub/event-calendar-service/internal/app"
	"github.com/takvimhub/event-calendar-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager creates and owns all background tasks.
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
}

func NewManager(logger *zap.Logger, sc *safe_close.SafeClose) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
	}
}

// RegisterTasks wires the tasks that apply to the current configuration.
func (m *Manager) RegisterTasks(appContainer *app.App) error {
	refreshTask := NewRemoteRefreshTask(appContainer)
	if refreshTask != nil {
		m.scheduler.AddTask(refreshTask)
	} else {
		m.logger.Info("remote refresh task is disabled (no remote storage or no cron spec)")
	}

	return nil
}

// Start launches all registered tasks.
func (m *Manager) Start() {
	m.scheduler.Start()
}
