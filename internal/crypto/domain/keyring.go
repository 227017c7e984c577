// Package domain defines the core models of the field envelope encryption scheme.
//
// Record fields are sealed under a data key (SymmetricKey). Each data key version is
// stored as a MasterKeyRecord, wrapped under a key derived from the administrator
// password. At runtime the unwrapped versions live in a Keyring, which is passed
// explicitly to every operation that needs a key.
package domain

import (
	"slices"
	"sync"
)

// Keyring holds the unwrapped data keys of every master key version, with one of them
// designated active for new encryptions. It owns its keys: Close destroys all of them.
//
// Keys are only lent out through WithActive and WithVersion, which hold a read lock for
// the duration of the callback so Close cannot wipe a key that is in use.
type Keyring struct {
	mu            sync.RWMutex
	activeVersion uint
	keys          map[uint]*SymmetricKey
}

// NewKeyring takes ownership of keys and marks activeVersion as active. If activeVersion
// is not present the keys are destroyed and ErrMasterKeyNotFound is returned.
func NewKeyring(activeVersion uint, keys map[uint]*SymmetricKey) (*Keyring, error) {
	if _, ok := keys[activeVersion]; !ok {
		for _, key := range keys {
			key.Destroy()
		}
		return nil, ErrMasterKeyNotFound
	}

	owned := make(map[uint]*SymmetricKey, len(keys))
	for version, key := range keys {
		owned[version] = key
	}

	return &Keyring{activeVersion: activeVersion, keys: owned}, nil
}

// ActiveVersion returns the version used for new encryptions, or 0 once closed.
func (k *Keyring) ActiveVersion() uint {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.activeVersion
}

// Versions returns the loaded versions in ascending order.
func (k *Keyring) Versions() []uint {
	k.mu.RLock()
	defer k.mu.RUnlock()

	versions := make([]uint, 0, len(k.keys))
	for version := range k.keys {
		versions = append(versions, version)
	}
	slices.Sort(versions)
	return versions
}

// WithActive calls fn with the active key and its version. The key must not be retained
// after fn returns. Returns ErrMasterKeyNotFound if the keyring is closed.
func (k *Keyring) WithActive(fn func(key *SymmetricKey, version uint) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()

	key, ok := k.keys[k.activeVersion]
	if !ok {
		return ErrMasterKeyNotFound
	}
	return fn(key, k.activeVersion)
}

// WithVersion calls fn with the key of the given version. Returns ErrKeyVersionNotFound
// if that version is not loaded.
func (k *Keyring) WithVersion(version uint, fn func(key *SymmetricKey) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()

	key, ok := k.keys[version]
	if !ok {
		return ErrKeyVersionNotFound
	}
	return fn(key)
}

// Close destroys every key and empties the keyring. It is safe to call more than once.
func (k *Keyring) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, key := range k.keys {
		key.Destroy()
	}
	clear(k.keys)
	k.activeVersion = 0
}
