// Package credential persists the Firecrawl API key and checks it against the
// remote service.
package credential

import "context"

// APIKeyStorageKey is the storage key the Firecrawl API key lives under.
const APIKeyStorageKey = "firecrawl_api_key"

// Store holds at most one credential per installation.
type Store interface {
	// Save persists the credential, replacing any previous value.
	Save(ctx context.Context, credential string) error
	// Load returns the stored credential; ok is false when none is stored.
	Load(ctx context.Context) (credential string, ok bool, err error)
	// Clear removes the stored credential.
	Clear(ctx context.Context) error

	Close() error
}
