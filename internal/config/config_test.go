package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/crowbar/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
toolchain:
  compiler: /opt/rust/bin/rustc
  args: ["--edition", "2021", "-O"]
  timeout: 1m
log:
  level: debug
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/opt/rust/bin/rustc", cfg.Toolchain.Compiler)
		assert.Equal(t, []string{"--edition", "2021", "-O"}, cfg.Toolchain.Args)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.False(t, cfg.Log.Caller)
		assert.Equal(t, domain.DefaultWorkspacePattern, cfg.Workspace.Pattern)

		d, err := cfg.Toolchain.TimeoutDuration()
		require.NoError(t, err)
		assert.Equal(t, time.Minute, d)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "toolchain: [unclosed\n"))
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(writeConfig(t, "toolchain:\n  compilr: rustc\n"))
		assert.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		_, err := Load(writeConfig(t, "toolchain:\n  timeout: soon\n"))
		assert.ErrorContains(t, err, "toolchain.timeout")
	})
}

func TestToolchain_TimeoutDuration(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty disables", timeout: "", want: 0},
		{name: "seconds", timeout: "30s", want: 30 * time.Second},
		{name: "negative", timeout: "-1s", wantErr: true},
		{name: "garbage", timeout: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Toolchain{Timeout: tt.timeout}.TimeoutDuration()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Marshal(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	assert.Contains(t, string(data), "compiler: rustc")
	assert.Contains(t, string(data), "timeout: 30s")
	assert.Contains(t, string(data), "caller: false")
}

func TestDefault_WorkspacePattern(t *testing.T) {
	assert.Equal(t, domain.DefaultWorkspacePattern, Default().Workspace.Pattern)
}
