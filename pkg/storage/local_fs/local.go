package local_fs

type Config struct {
	SavePath   string `yaml:"save-path" default:"storage/snapshot"`
	CustomPath string `yaml:"custom-path"`
}

// LocalFS stores blobs as plain files below SavePath. The version token is
// the SHA-256 of the file content.
type LocalFS struct {
	Config *Config
}

func NewClient(conf *Config) (*LocalFS, error) {
	if conf.SavePath == "" {
		conf.SavePath = "storage/snapshot"
	}
	return &LocalFS{Config: conf}, nil
}
