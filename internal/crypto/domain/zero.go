package domain

import "runtime"

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
// It is safe to call on nil or empty slices.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	// Keep b reachable until the writes above have happened.
	runtime.KeepAlive(b)
}
