package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		name     string
		state    sessionState
		expected string
	}{
		{
			name:     "period state",
			state:    periodView,
			expected: "period",
		},
		{
			name:     "custom range state",
			state:    customRange,
			expected: "custom range",
		},
		{
			name:     "config view state",
			state:    configView,
			expected: "configuration",
		},
		{
			name:     "loading state",
			state:    loading,
			expected: "loading",
		},
		{
			name:     "error state",
			state:    errorState,
			expected: "error",
		},
		{
			name:     "unknown state",
			state:    sessionState(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.state.String()
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestSessionStateConstants(t *testing.T) {
	be.True(t, periodView != customRange)
	be.True(t, customRange != configView)
	be.True(t, configView != loading)
	be.True(t, loading != errorState)

	// periodView is the first iota value
	be.Equal(t, sessionState(0), periodView)
}
