// Package history owns the persisted collection of analysis records: the
// store abstraction, the record-shape validator applied on load, and the
// submit/toggle service that callers drive.
package history

import "context"

// CollectionName is the fixed key under which the whole history
// collection is persisted, regardless of backend.
const CollectionName = "jd_analyzer_history"

// Store persists the history as one whole-collection JSON blob. Reads and
// writes always cover the entire collection; there are no partial
// updates. The core never touches storage directly, so hosts can swap in
// an in-memory, file-based or database-backed implementation.
type Store interface {
	// Load returns the raw stored blob, or nil when nothing has been
	// persisted yet.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored blob.
	Save(ctx context.Context, blob []byte) error
}
