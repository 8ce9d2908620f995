package storage

// Entry is a stored resource with its media type
type Entry struct {
	Type     string
	Resource any
}

// Storage is an interface that defines the resource storage operations
type Storage interface {
	// Set stores an entry under uri
	Set(uri string, e Entry)
	// Merge merges an entry into the one stored under uri
	Merge(uri string, e Entry) Entry
	// Get gets the entry stored under uri
	Get(uri string) (Entry, bool)
	// Delete deletes the entry stored under uri
	Delete(uri string) bool
	// Keys lists stored uris under a prefix in sorted order
	Keys(prefix string) []string
}
