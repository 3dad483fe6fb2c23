package task

import (
	"context"

	"github.com/takvimhub/event-calendar-service/internal/app"
)

// RemoteRefreshTask polls the remote blob store and reloads the in-memory
// stores when another process committed a newer snapshot. The check is a
// cheap token compare, a full reload happens only on movement.
type RemoteRefreshTask struct {
	app *app.App
}

// NewRemoteRefreshTask returns nil when no remote store or cron spec is
// configured.
func NewRemoteRefreshTask(appContainer *app.App) *RemoteRefreshTask {
	cfg := appContainer.Config()
	if !cfg.RemoteEnabled() || cfg.Sync.RefreshCron == "" {
		return nil
	}
	return &RemoteRefreshTask{app: appContainer}
}

func (t *RemoteRefreshTask) Name() string {
	return "remote_refresh"
}

func (t *RemoteRefreshTask) Run(ctx context.Context) error {
	return t.app.SyncService.RefreshIfStale(ctx)
}

func (t *RemoteRefreshTask) CronSpec() string {
	return t.app.Config().Sync.RefreshCron
}

func (t *RemoteRefreshTask) IsStartupRun() bool {
	return false
}
