package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/takvimhub/event-calendar-service/internal/domain"
	"github.com/takvimhub/event-calendar-service/internal/service"
	pkgapp "github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/storage"
	"github.com/takvimhub/event-calendar-service/pkg/storage/local_fs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// App is the application container: configuration, the in-memory store
// set, storage backends and the services built on them.
type App struct {
	config *AppConfig
	logger *zap.Logger

	Stores *domain.StoreSet

	// services
	EntryService    *service.EntryService
	CalendarService *service.CalendarService
	SyncService     *service.SyncService
	AuthService     *service.AuthService

	TokenManager pkgapp.TokenManager

	StartTime time.Time

	shutdownCh chan struct{}
	once       sync.Once
}

// NewApp builds the container and loads the initial snapshot. A corrupt
// snapshot is reported but does not abort startup; the service comes up
// with empty stores.
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}

	categories := make([]domain.Category, 0, len(cfg.Calendar.Categories))
	for _, c := range cfg.Calendar.Categories {
		categories = append(categories, domain.Category(c))
	}
	a.Stores = domain.NewStoreSet(categories)

	local, err := local_fs.NewClient(&cfg.Sync.Local)
	if err != nil {
		return nil, fmt.Errorf("local snapshot storage: %w", err)
	}

	var remote storage.BlobStore
	if cfg.RemoteEnabled() {
		remote, err = storage.NewClient(cfg.Sync.Remote)
		if err != nil {
			return nil, fmt.Errorf("remote snapshot storage: %w", err)
		}
		logger.Info("remote snapshot storage enabled",
			zap.String("storage", cfg.Sync.Remote.Type))
	}

	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Expiry:    cfg.GetTokenExpiry(),
	})

	a.SyncService = service.NewSyncService(a.Stores, local, remote, cfg.Sync.PathKey, logger)
	a.EntryService = service.NewEntryService(a.Stores, a.SyncService, logger)
	a.CalendarService = service.NewCalendarService(a.Stores)
	a.AuthService = service.NewAuthService(cfg.Security.AdminPasswordDigest, a.TokenManager, logger)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := a.SyncService.Load(ctx); err != nil {
		// a bad snapshot degrades to empty stores, keep serving
		logger.Error("initial snapshot load failed", zap.Error(err))
	}

	logger.Info("app container initialized",
		zap.Int("categories", len(a.Stores.Categories())),
		zap.Bool("remote", remote != nil))
	return a, nil
}

// Config returns the application configuration.
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version returns build version information.
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// Validator exposes gin's validator engine for custom rule registration.
func (a *App) Validator() *validator.Validate {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v
	}
	return nil
}

// GetAuthTokenKey returns the token signing secret.
func (a *App) GetAuthTokenKey() string {
	return a.config.Security.AuthTokenKey
}

// Shutdown flushes the final snapshot and marks the container closed.
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	a.once.Do(func() {
		close(a.shutdownCh)
		if ctx == nil {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
			defer cancel()
		}

		a.logger.Info("app container shutting down")
		if _, cerr := a.SyncService.Commit(ctx); cerr != nil {
			a.logger.Warn("final snapshot commit failed", zap.Error(cerr))
			err = cerr
		}
	})
	return err
}

// ShutdownCh returns the close notification channel.
func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}
