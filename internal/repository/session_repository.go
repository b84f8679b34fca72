package repository

import (
	"time"

	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// SessionRepository defines storage operations on login sessions.
type SessionRepository interface {
	CreateSession(session *models.Session) error
	GetSessionByToken(token string) (*models.Session, error)
	DeleteSessionByToken(token string) error
	DeleteExpiredSessions(now time.Time) error
}

// SessionRepositoryImpl provides methods to interact with the Session model in the database.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepositoryImpl instance with the provided GORM database connection.
func NewSessionRepository(db *gorm.DB) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{db: db}
}

// CreateSession creates a new Session in the database.
func (r *SessionRepositoryImpl) CreateSession(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetSessionByToken retrieves a Session by its bearer token.
func (r *SessionRepositoryImpl) GetSessionByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "token = ?", token).Error
	return &session, err
}

// DeleteSessionByToken deletes a Session by its bearer token.
func (r *SessionRepositoryImpl) DeleteSessionByToken(token string) error {
	return r.db.Delete(&models.Session{}, "token = ?", token).Error
}

// DeleteExpiredSessions removes all sessions that expired before now.
func (r *SessionRepositoryImpl) DeleteExpiredSessions(now time.Time) error {
	return r.db.Delete(&models.Session{}, "expires_at < ?", now).Error
}
