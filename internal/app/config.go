// Package app provides the application container wiring configuration,
// stores, storage backends and services together.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/takvimhub/event-calendar-service/internal/middleware"
	"github.com/takvimhub/event-calendar-service/pkg/storage"
	"github.com/takvimhub/event-calendar-service/pkg/storage/local_fs"
	"github.com/takvimhub/event-calendar-service/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AdminDigestEnv overrides the configured admin password digest; the
// credential is supplied externally, never committed with the source.
const AdminDigestEnv = "CALENDAR_ADMIN_DIGEST"

// AppConfig is the full application configuration.
type AppConfig struct {
	File     string                  `yaml:"-"` // config file path, not serialized
	Server   ServerConfig            `yaml:"server"`
	Log      LogConfig               `yaml:"log"`
	App      AppSettings             `yaml:"app"`
	Security SecurityConfig          `yaml:"security"`
	Calendar CalendarConfig          `yaml:"calendar"`
	Sync     SyncConfig              `yaml:"sync"`
	Tracer   middleware.TracerConfig `yaml:"tracer"`
}

// ServerConfig configures the HTTP listeners.
type ServerConfig struct {
	// RunMode is gin's run mode
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort public API listen address
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout read timeout in seconds
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout write timeout in seconds
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen pprof and metrics listen address
	PrivateHttpListen string `yaml:"private-http-listen" default:":9001"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level log level, see zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File log file path, empty disables the file sink
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production enables JSON output on stderr
	Production bool `yaml:"production" default:"true"`
}

// AppSettings holds general application settings.
type AppSettings struct {
	// DefaultContextTimeout per-request timeout in seconds
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
}

// SecurityConfig configures the access guard.
type SecurityConfig struct {
	// AdminPasswordDigest is "sha256:<hex>" or a bcrypt hash; the
	// CALENDAR_ADMIN_DIGEST environment variable takes precedence
	AdminPasswordDigest string `yaml:"admin-password-digest"`
	// AuthTokenKey signs admin session tokens
	AuthTokenKey string `yaml:"auth-token-key" default:"event-calendar-Auth-Token"`
	// TokenExpiry supports 7d / 24h / 30m forms
	TokenExpiry string `yaml:"token-expiry" default:"12h"`
}

// CalendarConfig configures the category set.
type CalendarConfig struct {
	// Categories fixed category names; empty means the built in three
	Categories []string `yaml:"categories"`
}

// SyncConfig configures the persistence synchronizer.
type SyncConfig struct {
	// PathKey names the snapshot blob inside both stores
	PathKey string `yaml:"path-key" default:"calendar.json"`
	// Local local file storage for the snapshot
	Local local_fs.Config `yaml:"local"`
	// Remote optional remote blob store; Type empty disables it
	Remote *storage.Config `yaml:"remote"`
	// RefreshCron cron spec polling the remote for foreign commits,
	// empty disables the scheduler
	RefreshCron string `yaml:"refresh-cron" default:"*/5 * * * *"`
}

// LoadConfig loads configuration from a file, applying defaults and the
// environment digest override.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// fill fields present in YAML but left empty; defaults.Set only
	// touches zero values
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	if env := os.Getenv(AdminDigestEnv); env != "" {
		c.Security.AdminPasswordDigest = env
	}

	return c, realpath, nil
}

// Save writes the configuration back to its file.
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}

// GetTokenExpiry returns the parsed token lifetime.
func (c *AppConfig) GetTokenExpiry() time.Duration {
	if expiry, err := util.ParseDuration(c.Security.TokenExpiry); err == nil {
		return expiry
	}
	return 12 * time.Hour
}

// RemoteEnabled reports whether a remote blob store is configured.
func (c *AppConfig) RemoteEnabled() bool {
	return c.Sync.Remote != nil && c.Sync.Remote.Type != ""
}
