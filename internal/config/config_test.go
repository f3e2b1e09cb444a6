package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yml")
	body := "lang: es\ncountry: [ES, MX]\nall_tasks: true\nsplit: sentence\nmode: extract\nmin_length: 10\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.NotNil(t, cfg.Lang)
	require.Equal(t, "es", *cfg.Lang)
	require.Equal(t, []string{"ES", "MX"}, cfg.Country)
	require.True(t, *cfg.AllTasks)
	require.Equal(t, "sentence", *cfg.Split)
	require.Equal(t, "extract", *cfg.Mode)
	require.Equal(t, 10, *cfg.MinLength)
	require.Nil(t, cfg.Template, "absent keys stay nil")
}

func TestLoadLocal_ProbesCandidateNames(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadLocal(dir)
	require.Error(t, err, "no config present")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "piistream.yaml"), []byte("mode: extract\n"), 0o644))
	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.Equal(t, "extract", *cfg.Mode)
}

func TestLoadGlobal_XDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "piistream"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "piistream", "config.yml"), []byte("no_audit: true\n"), 0o644))

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	require.True(t, *cfg.NoAudit)
}
