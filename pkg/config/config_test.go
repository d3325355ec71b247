package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "staffdir_data.sdir", cfg.Store.DataFile)
	assert.Equal(t, "json", cfg.Store.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.Debounce)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STAFFDIR_ADDR", ":9090")
	t.Setenv("STAFFDIR_DATA_FILE", "/tmp/dir.sdir")
	t.Setenv("STAFFDIR_STORE_FORMAT", "binary")
	t.Setenv("STAFFDIR_DEBOUNCE_MS", "100")
	t.Setenv("STAFFDIR_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/dir.sdir", cfg.Store.DataFile)
	assert.Equal(t, "binary", cfg.Store.Format)
	assert.Equal(t, 100*time.Millisecond, cfg.Store.Debounce)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("non-numeric debounce", func(t *testing.T) {
		t.Setenv("STAFFDIR_DEBOUNCE_MS", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero debounce", func(t *testing.T) {
		t.Setenv("STAFFDIR_DEBOUNCE_MS", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown store format", func(t *testing.T) {
		t.Setenv("STAFFDIR_STORE_FORMAT", "xml")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, b,"))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
}
