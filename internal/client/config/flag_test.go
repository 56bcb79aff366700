package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-d", "/tmp/s.db", "-t", "3", "-o", "out"},
			expected: &Config{
				ServerEndpointAddr: "127.0.0.1:9090",
				DatabaseFile:       "/tmp/s.db",
				RequestTimeout:     3 * time.Second,
				DownloadDir:        "out",
			},
		},
		{
			name: "subcommand flags are ignored",
			args: []string{"cmd", "log", "vehicle", "--distance", "12", "-a", "h:1"},
			expected: &Config{
				ServerEndpointAddr: "h:1",
				RequestTimeout:     10 * time.Second,
			},
		},
		{name: "bad timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{RequestTimeout: 10 * time.Second}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
