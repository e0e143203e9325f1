package storage

import (
	"fmt"
	"sync"
	"testing"
)

// fakePrefs implements Preferences for PrefStore tests.
type fakePrefs struct {
	values map[string]string
}

func (p *fakePrefs) String(key string) string {
	return p.values[key]
}

func (p *fakePrefs) SetString(key, value string) {
	p.values[key] = value
}

// TestPrefStore_RoundTrip tests that values round-trip through preferences
func TestPrefStore_RoundTrip(t *testing.T) {
	store := NewPrefStore(&fakePrefs{values: map[string]string{}})

	if _, ok := store.Get("missing"); ok {
		t.Error("Get() on missing key should report absent")
	}

	store.Set("api-key", "abc123")

	v, ok := store.Get("api-key")
	if !ok {
		t.Fatal("Get() after Set() should report present")
	}
	if v != "abc123" {
		t.Errorf("Get() = %q, want %q", v, "abc123")
	}
}

// TestCredentialStore_LoadsPersistedValueOnStartup tests startup hydration
func TestCredentialStore_LoadsPersistedValueOnStartup(t *testing.T) {
	store := NewMemStore()
	store.Set("api-key", "persisted")

	creds := NewCredentialStore(store)
	if creds.Get() != "persisted" {
		t.Errorf("Get() = %q, want %q", creds.Get(), "persisted")
	}
}

// TestCredentialStore_StartsEmptyWithoutPersistedValue tests the fresh case
func TestCredentialStore_StartsEmptyWithoutPersistedValue(t *testing.T) {
	creds := NewCredentialStore(NewMemStore())
	if creds.Get() != "" {
		t.Errorf("Get() = %q, want empty", creds.Get())
	}
}

// TestCredentialStore_SetPersistsImmediately tests write-through behavior
func TestCredentialStore_SetPersistsImmediately(t *testing.T) {
	store := NewMemStore()
	creds := NewCredentialStore(store)

	creds.Set("new-key")

	if creds.Get() != "new-key" {
		t.Errorf("in-memory value = %q, want %q", creds.Get(), "new-key")
	}
	if v, _ := store.Get("api-key"); v != "new-key" {
		t.Errorf("persisted value = %q, want %q", v, "new-key")
	}

	// A second store sees the change without any explicit save step.
	if NewCredentialStore(store).Get() != "new-key" {
		t.Error("reloaded credential store should see the persisted value")
	}
}

// TestCredentialStore_ConcurrentAccess tests that edits from the settings
// form and reads from an in-flight submission may interleave; run with the
// race detector.
func TestCredentialStore_ConcurrentAccess(t *testing.T) {
	creds := NewCredentialStore(NewMemStore())

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			creds.Set(fmt.Sprintf("key-%d", i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			creds.Get()
		}
	}()

	wg.Wait()

	if creds.Get() != "key-199" {
		t.Errorf("Get() = %q, want last written value", creds.Get())
	}
}
