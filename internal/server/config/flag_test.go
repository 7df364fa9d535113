package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:8080", "-g", "127.0.0.1:9090", "-m", "memory", "-d", "db",
			"-b", "memory", "-r", "redis:6379", "-p", "pw", "-s", "secret", "-t", "48",
			"-k", "sid", "-n", "4", "-l", "debug", "-secure", "-i=false", "-o",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrHTTP:     "127.0.0.1:8080",
				EndpointAddrGRPC:     "127.0.0.1:9090",
				StorageBackend:       "memory",
				DatabaseDSN:          "db",
				SessionBackend:       "memory",
				RedisAddr:            "redis:6379",
				RedisPassword:        "pw",
				SecretKey:            "secret",
				SessionTTL:           48 * time.Hour,
				CookieName:           "sid",
				CookieSecure:         true,
				GraphiQL:             false,
				EnforcePostOwnership: true,
				MaxParallelism:       4,
				LogLevel:             "debug",
			}},
		{name: "bad int", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_KeepsValuesWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-unrelated", "x"}

	var c Config
	c.LoadDefaults()
	want := c

	require.NotPanics(t, func() { parseFlags(&c) })
	assert.Equal(t, want, c)
}
