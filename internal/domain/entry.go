package domain

// Entry is one dated record inside a category. Description is stored
// untruncated; display layers may shorten it but the stored value never
// loses data.
type Entry struct {
	Date        DateKey
	Description string
	// IsNew is set on insertion and cleared only by an explicit MarkSeen;
	// reads never flip it.
	IsNew bool
}

// Clone returns a detached copy so callers outside the store cannot mutate
// owned state.
func (e *Entry) Clone() *Entry {
	c := *e
	return &c
}
