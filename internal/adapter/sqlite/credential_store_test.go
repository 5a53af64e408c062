package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simbu-console/internal/config/configs"
	"simbu-console/internal/core/port"
	"simbu-console/internal/db"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	conn, err := db.OpenLocal(configs.Store{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewCredentialStore(conn)
}

func TestCredentialStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(port.KeyToken)
	assert.ErrorIs(t, err, port.ErrKeyNotFound)

	require.NoError(t, s.Set(port.KeyToken, "tok-1"))
	v, err := s.Get(port.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)

	// Overwrite wins.
	require.NoError(t, s.Set(port.KeyToken, "tok-2"))
	v, err = s.Get(port.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", v)
}

func TestCredentialStoreDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set(port.KeyUser, `{"id_utilizador":1}`))
	require.NoError(t, s.Delete(port.KeyUser))
	_, err := s.Get(port.KeyUser)
	assert.ErrorIs(t, err, port.ErrKeyNotFound)

	// Deleting an absent key is fine.
	require.NoError(t, s.Delete(port.KeyUser))
}
