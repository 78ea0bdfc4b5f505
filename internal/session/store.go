// Package session persists small session facts (auth token, install id) in a
// durable key-value store scoped to the installation.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// TokenKey is the reserved key holding the user's auth token.
const TokenKey = "authToken"

const installIDKey = "installId"

// Entry is one persisted key-value pair.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName specifies the table name for Entry
func (Entry) TableName() string {
	return "session_entries"
}

// Store is a key-value session store backed by a single SQLite file. It is
// opened lazily on first access and stays open for the life of the process.
type Store struct {
	path string

	once    sync.Once
	db      *gorm.DB
	openErr error
}

// NewStore returns a store backed by the given SQLite file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user session database location, creating the
// parent directory if needed.
func DefaultPath() (string, error) {
	appData, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config dir: %w", err)
	}
	dir := filepath.Join(appData, "Unpod")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session dir: %w", err)
	}
	return filepath.Join(dir, "session.db"), nil
}

func (s *Store) conn() (*gorm.DB, error) {
	s.once.Do(func() {
		db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			s.openErr = fmt.Errorf("failed to open session store: %w", err)
			return
		}

		// Every mutation must be durable before the call returns.
		db.Exec("PRAGMA journal_mode=WAL;")
		db.Exec("PRAGMA synchronous=FULL;")

		if err := db.AutoMigrate(&Entry{}); err != nil {
			s.openErr = fmt.Errorf("failed to migrate session store: %w", err)
			return
		}
		s.db = db
	})
	return s.db, s.openErr
}

// Get returns the stored value for key and whether the key exists.
func (s *Store) Get(key string) (string, bool, error) {
	db, err := s.conn()
	if err != nil {
		return "", false, err
	}
	var e Entry
	err = db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return e.Value, true, nil
}

// Set writes key=value, replacing any previous value.
func (s *Store) Set(key, value string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	e := Entry{Key: key, Value: value}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error; err != nil {
		return fmt.Errorf("failed to persist %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if err := db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Clear removes every stored key.
func (s *Store) Clear() error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM session_entries").Error; err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	return nil
}

// Token returns the stored auth token, if any.
func (s *Store) Token() (string, bool, error) {
	return s.Get(TokenKey)
}

// SetToken stores the auth token.
func (s *Store) SetToken(token string) error {
	return s.Set(TokenKey, token)
}

// DeleteToken removes the auth token.
func (s *Store) DeleteToken() error {
	return s.Delete(TokenKey)
}

// InstallID returns the stable per-installation identifier, generating and
// persisting one on first call.
func (s *Store) InstallID() (string, error) {
	id, ok, err := s.Get(installIDKey)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := s.Set(installIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}
