package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "x-line-user-id", cfg.Backend.IdentityHeader)
	require.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)
	require.Equal(t, 20, cfg.Quest.DefaultLimit)
	require.Equal(t, 50, cfg.Quest.MaxLimit)
	require.Equal(t, "kaia", cfg.Chain.Chain)
}

func Test_Load_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacepet.toml")
	content := `
env = "production"

[backend]
urls = ["https://game.example.com/api", "https://game-backup.example.com/api"]

[quest]
max_limit = 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Env)
	require.Len(t, cfg.Backend.URLs, 2)

	// Unset fields keep their defaults.
	require.Equal(t, "x-line-user-id", cfg.Backend.IdentityHeader)
	require.Equal(t, 100, cfg.Quest.MaxLimit)
	require.Equal(t, 20, cfg.Quest.DefaultLimit)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
