package main

import (
	"maps"
	"slices"
)

// loadingState tracks which background loads have finished, by key.
type loadingState map[string]bool

func newLoadingState(keys ...string) loadingState {
	l := make(loadingState, len(keys))
	for _, k := range keys {
		l[k] = false
	}
	return l
}

// set marks key as loaded
func (l loadingState) set(key string) {
	l[key] = true
}

// unset marks key as loading again
func (l loadingState) unset(key string) {
	l[key] = false
}

// pending returns the keys still loading, sorted.
func (l loadingState) pending() []string {
	var keys []string
	for _, k := range slices.Sorted(maps.Keys(l)) {
		if !l[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// allLoaded returns true if all keys are loaded, otherwise the first pending key.
func (l loadingState) allLoaded() (bool, string) {
	if pending := l.pending(); len(pending) > 0 {
		return false, pending[0]
	}

	return true, ""
}
