package storage

// Store is a durable client-local key/value capability. Implementations
// must round-trip the stored string; no expiry, no encryption.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Preferences is the subset of fyne.Preferences the store relies on, kept
// as a local interface so this package stays toolkit-free.
type Preferences interface {
	String(key string) string
	SetString(key, value string)
}

// PrefStore persists values through application preferences.
type PrefStore struct {
	prefs Preferences
}

func NewPrefStore(prefs Preferences) *PrefStore {
	return &PrefStore{prefs: prefs}
}

func (s *PrefStore) Get(key string) (string, bool) {
	v := s.prefs.String(key)
	return v, v != ""
}

func (s *PrefStore) Set(key, value string) {
	s.prefs.SetString(key, value)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) {
	s.values[key] = value
}
