package interfaces

import "context"

// BlobStore abstracts the key-value surface used to persist the CMS
// snapshot. Hosts back it with local storage, a file, or a remote store.
type BlobStore interface {
	// Get returns the stored value and whether the key exists. An absent key
	// is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes or replaces the value under key.
	Set(ctx context.Context, key string, value string) error
	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
