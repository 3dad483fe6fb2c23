package global

import (
	"github.com/takvimhub/event-calendar-service/pkg/fileurl"
)

var (
	// ROOT is the directory the binary runs from
	ROOT string
	Name string = "Event Calendar Service"
	// Version is stamped by the build, see cmd.version
	Version string = "dev"
)

func init() {
	ROOT = fileurl.GetExePath() + "/"
}
