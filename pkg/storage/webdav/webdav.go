package webdav

import (
	"github.com/studio-b12/gowebdav"
)

// Config holds the WebDAV connection settings.
type Config struct {
	Endpoint   string `yaml:"endpoint"`
	Path       string `yaml:"path"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	CustomPath string `yaml:"custom-path"`
}

// WebDAV stores blobs as files on a WebDAV server. The version token is the
// SHA-256 of the content; the precondition is checked with a re-read just
// before the write, which is best effort since plain WebDAV offers no
// conditional PUT we can rely on across servers.
type WebDAV struct {
	Client *gowebdav.Client
	Config *Config
}

var clients = make(map[string]*WebDAV)

// NewClient creates a WebDAV client instance, reusing one per endpoint.
func NewClient(conf *Config) (*WebDAV, error) {
	key := conf.Endpoint + conf.Path + conf.User + conf.CustomPath
	if clients[key] != nil {
		return clients[key], nil
	}

	c := gowebdav.NewClient(conf.Endpoint, conf.User, conf.Password)
	c.Connect()

	clients[key] = &WebDAV{
		Client: c,
		Config: conf,
	}
	return clients[key], nil
}
