package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClient_MissingOptionalFile(t *testing.T) {
	cfg, err := LoadClient(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)

	_, err = LoadClient(filepath.Join(t.TempDir(), "nope.yaml"), false)
	assert.Error(t, err)
}

func TestLoadClient_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ClientConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("apiUrl: https://leave.tnstc.in\nstateDir: /tmp/leavectl\ntimeout: 5s\n"), 0o600))

	cfg, err := LoadClient(path, false)
	require.NoError(t, err)
	assert.Equal(t, "https://leave.tnstc.in", cfg.APIURL)
	assert.Equal(t, "/tmp/leavectl", cfg.StateDir)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadClient_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ClientConfigFileName)

	require.NoError(t, os.WriteFile(path, []byte("apiUrl: not a url\n"), 0o600))
	_, err := LoadClient(path, false)
	assert.ErrorContains(t, err, "apiUrl")

	require.NoError(t, os.WriteFile(path, []byte("stateDir: \"\"\n"), 0o600))
	_, err = LoadClient(path, false)
	assert.ErrorContains(t, err, "stateDir")

	require.NoError(t, os.WriteFile(path, []byte("apiUrl: [\n"), 0o600))
	_, err = LoadClient(path, false)
	assert.ErrorContains(t, err, "parse")
}
