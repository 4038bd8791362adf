package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "debug", want: DEBUG},
		{in: " INFO ", want: INFO},
		{in: "warn", want: WARNING},
		{in: "warning", want: WARNING},
		{in: "error", want: ERROR},
		{in: "silence", want: SILENCE},
		{in: "", want: INFO},
		{in: "verbose", want: INFO},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debugf("dropped %d", 1)
	l.Errorf("dropped %s", "too")
	require.NoError(t, l.Sync())
}
