package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"timetrack-service/internal/localization"
	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
)

// sessionTTL is how long a login session stays valid.
const sessionTTL = 30 * 24 * time.Hour

// AuthService manages user accounts and bearer-token sessions.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

// NewAuthService creates a new AuthService on top of the given repositories.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Register creates a new user with a bcrypt password hash and opens a session
// for it. New users start in UTC with dark mode off.
func (s *AuthService) Register(username, email, password string) (*models.User, *models.Session, error) {
	if len(password) < 8 {
		return nil, nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, errors.Wrap(err, "hashing password")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Timezone:     "UTC",
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, nil, errors.Wrap(err, "creating user")
	}

	session, err := s.createSession(user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login verifies the credentials and opens a new session. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.User, *models.Session, error) {
	user, err := s.users.GetUserByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout deletes the session behind the given token.
func (s *AuthService) Logout(token string) error {
	return s.sessions.DeleteSessionByToken(token)
}

// GetUserByToken resolves a bearer token to its user, rejecting expired sessions.
func (s *AuthService) GetUserByToken(token string) (*models.User, error) {
	session, err := s.sessions.GetSessionByToken(token)
	if err != nil {
		return nil, errors.Wrap(err, "looking up session")
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return s.users.GetUser(session.UserID)
}

// UpdateSettings changes the user's timezone and dark mode flag. Nil fields
// are left untouched. The timezone must be a valid IANA zone name.
func (s *AuthService) UpdateSettings(user *models.User, timezone *string, darkMode *bool) error {
	if timezone != nil {
		if _, err := time.LoadLocation(*timezone); err != nil {
			return errors.Wrapf(localization.ErrUnknownTimezone, "%q", *timezone)
		}
		user.Timezone = *timezone
	}
	if darkMode != nil {
		user.DarkMode = *darkMode
	}
	return errors.Wrap(s.users.UpdateUser(user), "updating user settings")
}

// createSession opens a new random-token session for the user.
func (s *AuthService) createSession(user *models.User) (*models.Session, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, errors.Wrap(err, "generating session token")
	}

	session := &models.Session{
		UserID:    user.ID,
		Token:     hex.EncodeToString(tokenBytes),
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessions.CreateSession(session); err != nil {
		return nil, errors.Wrap(err, "creating session")
	}
	return session, nil
}
