package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pulseshitter/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// TestVersionCommand verifies the version subcommand prints the build version
func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pulseshitter")
	assert.Contains(t, out, version)
}

// TestConfigInitWritesDefaults verifies config init creates a loadable file and refuses to clobber it
func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorIs(t, err, os.ErrExist)

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

// TestConfigShow verifies the effective configuration is printed as TOML
func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nmax_frames = 7\n"), 0o644))

	out, err := execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "max_frames = 7")
	assert.Contains(t, out, "[theme]")
}

// TestApplyFlags verifies only explicitly set flags override the file
func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg config.Config)
	}{
		{"none", nil, func(t *testing.T, cfg config.Config) {
			assert.Equal(t, config.Default(), cfg)
		}},
		{"frames", []string{"--frames", "12"}, func(t *testing.T, cfg config.Config) {
			assert.Equal(t, 12, cfg.UI.MaxFrames)
		}},
		{"no mouse", []string{"--no-mouse"}, func(t *testing.T, cfg config.Config) {
			assert.False(t, cfg.UI.Mouse)
		}},
		{"drain and debug", []string{"--drain", "--debug"}, func(t *testing.T, cfg config.Config) {
			assert.True(t, cfg.UI.DrainEvents)
			assert.True(t, cfg.Log.Debug)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			parsed := &rootOptions{}
			parsed.debug, _ = cmd.Flags().GetBool("debug")
			parsed.noMouse, _ = cmd.Flags().GetBool("no-mouse")
			parsed.drain, _ = cmd.Flags().GetBool("drain")
			parsed.frames, _ = cmd.Flags().GetInt("frames")

			cfg := config.Default()
			applyFlags(cmd, parsed, &cfg)
			tt.check(t, cfg)
		})
	}
}

// TestRootRejectsBadConfig verifies config errors surface before the terminal is touched
func TestRootRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[audio]\nvolume = 3.0\n"), 0o644))

	_, err := execute(t, "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio.volume")
}
