package storage

import "sync"

// credentialKey is the fixed storage key holding the API key.
const credentialKey = "api-key"

// CredentialStore holds the single API key. The persisted value is loaded
// once at construction; every edit overwrites it synchronously. The value
// is never validated. Reads and writes can come from different goroutines
// (the settings form stays editable while a submission is in flight), so
// access is serialized here.
type CredentialStore struct {
	mu    sync.Mutex
	store Store
	value string
}

func NewCredentialStore(store Store) *CredentialStore {
	c := &CredentialStore{store: store}
	if v, ok := store.Get(credentialKey); ok {
		c.value = v
	}

	return c
}

// Get returns the in-memory credential.
func (c *CredentialStore) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set updates the in-memory value and persists it immediately.
func (c *CredentialStore) Set(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.store.Set(credentialKey, value)
}
