package sqlite

import (
	"database/sql"
	"errors"

	"simbu-console/internal/core/port"
)

// CredentialStore implements port.CredentialStore on the local sqlite
// database. database/sql serialises access, so the store is safe for
// concurrent use.
type CredentialStore struct {
	db *sql.DB
}

// NewCredentialStore returns a store backed by the given database handle.
func NewCredentialStore(db *sql.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Get returns the stored value for key, or port.ErrKeyNotFound.
func (s *CredentialStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", port.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set writes value under key, replacing any previous value.
func (s *CredentialStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	return err
}

// Delete removes key. Deleting an absent key is not an error.
func (s *CredentialStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE key = ?`, key)
	return err
}
