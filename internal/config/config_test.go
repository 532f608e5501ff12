// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubitmap/internal/config"
	"github.com/katalvlaran/qubitmap/placement"
	"github.com/katalvlaran/qubitmap/router"
)

func TestParse_EmptyGivesDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, placement.DefaultBeamWidth, cfg.Placement.BeamWidth)
	assert.Equal(t, router.DefaultMaxAttempts, cfg.Router.MaxAttempts)
	assert.Equal(t, "declared", cfg.Router.ClbitPolicy)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
placement:
  beam_width: 4
router:
  max_attempts: 250
  clbit_policy: layout
  verify: true
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Placement.BeamWidth)
	assert.Equal(t, 250, cfg.Router.MaxAttempts)
	assert.Equal(t, router.DefaultStallLimit, cfg.Router.StallLimit)
	assert.Equal(t, "layout", cfg.Router.ClbitPolicy)
	assert.True(t, cfg.Router.Verify)
	assert.Equal(t, "json", cfg.Log.Format)

	opts, err := cfg.RouterOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
	assert.Len(t, cfg.PlacementOptions(), 1)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero beam":      "placement:\n  beam_width: 0\n",
		"zero attempts":  "router:\n  max_attempts: 0\n",
		"bad policy":     "router:\n  clbit_policy: physical\n",
		"bad level":      "log:\n  level: trace\n",
		"bad format":     "log:\n  format: xml\n",
		"negative stall": "router:\n  stall_limit: -3\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("router:\n  max_atempts: 5\n"))
	assert.Error(t, err, "unknown keys are rejected")
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("router:\n  stall_limit: 5\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Router.StallLimit)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":1`)
}
