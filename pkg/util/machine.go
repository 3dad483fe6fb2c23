package util

import (
	"os"
	"sync"

	"github.com/denisbrodbeck/machineid"
)

var (
	machineID      string
	machineIDMutex sync.Mutex
)

// GetMachineID returns a stable identifier of the current machine, used to
// salt the token signing key so issued tokens do not survive a host move.
// Falls back to the hostname when the platform machine id is unavailable.
func GetMachineID() string {
	machineIDMutex.Lock()
	defer machineIDMutex.Unlock()

	if machineID != "" {
		return machineID
	}

	if id, err := machineid.ID(); err == nil && id != "" {
		machineID = id
		return machineID
	}

	if host, err := os.Hostname(); err == nil {
		machineID = host
	}
	return machineID
}
