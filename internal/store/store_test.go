package store

import (
	"testing"

	"flashdeck/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileBackend(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Backend: config.BackendFile, DataDir: t.TempDir()},
	}

	st, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, st)
	assert.NoError(t, st.Close())
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: "etcd"}}

	_, err := New(cfg)
	assert.ErrorContains(t, err, "unknown storage backend")
}
