package database

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/localnerve/routinesdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionStorage implements fiber.Storage over the sessions table
type SessionStorage struct {
	db        *gorm.DB
	done      chan struct{}
	closeOnce sync.Once
}

// NewSessionStorage returns a storage backed by db. When gcInterval is
// positive, expired sessions are purged on that interval until Close.
func NewSessionStorage(db *gorm.DB, gcInterval time.Duration) *SessionStorage {
	s := &SessionStorage{
		db:   db,
		done: make(chan struct{}),
	}
	if gcInterval > 0 {
		go s.gc(gcInterval)
	}
	return s
}

// Get returns the stored value for key, or nil if it is absent or expired
func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	var session models.Session
	err := s.db.Where("id = ? AND (expires_at IS NULL OR expires_at > ?)", key, time.Now().UTC()).
		Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session.Data, nil
}

// Set stores val under key. A zero exp never expires.
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	session := models.Session{ID: key, Data: models.Blob(val)}
	if exp > 0 {
		expiresAt := time.Now().UTC().Add(exp)
		session.ExpiresAt = &expiresAt
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at"}),
	}).Create(&session).Error
}

// Delete removes key
func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.db.Where("id = ?", key).Delete(&models.Session{}).Error
}

// Reset removes every session
func (s *SessionStorage) Reset() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Session{}).Error
}

// Close stops the expiry sweep. The database handle is owned by the caller.
func (s *SessionStorage) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// DeleteExpired purges sessions past their expiry and reports how many
func (s *SessionStorage) DeleteExpired() (int64, error) {
	result := s.db.Where("expires_at IS NOT NULL AND expires_at <= ?", time.Now().UTC()).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

func (s *SessionStorage) gc(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if n, err := s.DeleteExpired(); err != nil {
				log.Printf("Session sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("Session sweep removed %d expired sessions", n)
			}
		}
	}
}
