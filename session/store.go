package session

import (
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"item-notes/models"

	"github.com/google/uuid"
)

// DefaultTTL is how long a browser session stays valid.
const DefaultTTL = 30 * 24 * time.Hour

// Store persists browser sessions in the sessions table.
type Store struct {
	db       *sql.DB
	ttl      time.Duration
	stopOnce sync.Once
	stopChan chan struct{}
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		ttl:      DefaultTTL,
		stopChan: make(chan struct{}),
	}
}

func (s *Store) Create(userID string) (*models.Session, error) {
	now := time.Now()
	sess := &models.Session{
		ID:         uuid.New().String(),
		UserID:     userID,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, user_id, expires_at, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?)
	`, sess.ID, sess.UserID, sess.ExpiresAt, sess.CreatedAt, sess.LastUsedAt)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the session, or nil if it is unknown or expired.
func (s *Store) Get(sessionID string) (*models.Session, error) {
	var sess models.Session
	err := s.db.QueryRow(`
		SELECT id, user_id, expires_at, created_at, last_used_at
		FROM sessions WHERE id = ?
	`, sessionID).Scan(&sess.ID, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt, &sess.LastUsedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}

	sess.LastUsedAt = time.Now()
	if _, err := s.db.Exec(`UPDATE sessions SET last_used_at = ? WHERE id = ?`, sess.LastUsedAt, sess.ID); err != nil {
		return nil, err
	}

	return &sess, nil
}

func (s *Store) Delete(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID)
	return err
}

// CleanupExpired removes expired sessions and reports how many were dropped.
func (s *Store) CleanupExpired() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE expires_at < ?`, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := s.CleanupExpired()
				if err != nil {
					slog.Error("session cleanup failed", "error", err)
					continue
				}
				if n > 0 {
					slog.Info("expired sessions removed", "count", n)
				}
			case <-s.stopChan:
				return
			}
		}
	}()
}

func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}
