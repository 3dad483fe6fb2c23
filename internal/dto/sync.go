package dto

// SyncStatus reports the synchronizer's view of the backing stores.
type SyncStatus struct {
	LocalToken     string `json:"localToken,omitempty"`
	RemoteToken    string `json:"remoteToken,omitempty"`
	RemoteEnabled  bool   `json:"remoteEnabled"`
	EntryCount     int    `json:"entryCount"`
	LastCommitUnix int64  `json:"lastCommitUnix,omitempty"`
	LastLoadUnix   int64  `json:"lastLoadUnix,omitempty"`
}

// SyncCommitResult reports the outcome of an explicit commit.
type SyncCommitResult struct {
	RemoteToken string `json:"remoteToken,omitempty"`
	EntryCount  int    `json:"entryCount"`
}
