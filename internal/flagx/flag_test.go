package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "admin.env", "-a", "http://localhost:8080"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "admin.env"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.env", "-a", "http://localhost:8080"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.env"},
		},
		{
			name:         "both short and long present, preserve order",
			args:         []string{"--config=first.env", "-c", "second.env", "-x", "1"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=first.env", "-c", "second.env"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag (no value)",
			args:         []string{"-c", "-notvalue"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c"},
		},
		{
			name:         "multiple allowed flags kept",
			args:         []string{"-a", "http://localhost:8080", "-c", "admin.env", "--other", "x"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-a", "http://localhost:8080", "-c", "admin.env"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowedFlags)
			assert.Equal(t, tc.want, got)
		})
	}
}

func withArgs(t *testing.T, args []string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"admin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestEnvFileFlags(t *testing.T) {
	t.Run("short form", func(t *testing.T) {
		withArgs(t, []string{"-c", "/path/short.env"})
		assert.Equal(t, "/path/short.env", EnvFileFlags())
	})

	t.Run("long form", func(t *testing.T) {
		withArgs(t, []string{"-config", "/path/long.env"})
		assert.Equal(t, "/path/long.env", EnvFileFlags())
	})

	t.Run("absent", func(t *testing.T) {
		withArgs(t, []string{"-a", "http://localhost:8080"})
		assert.Empty(t, EnvFileFlags())
	})
}
