package services

import (
	"context"
	"time"

	"item-notes/auth"
	"item-notes/models"
)

// AuthService handles authentication business logic
type AuthService struct {
	users     UserRepository
	sessions  SessionStore
	secretKey []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(users UserRepository, sessions SessionStore, secretKey string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Authenticate checks an email/password pair and returns the active user
func (as *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := as.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(password, user.HashedPassword) {
		return nil, ErrIncorrectCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

// Login issues a bearer access token for API clients
func (as *AuthService) Login(ctx context.Context, email, password string) (*models.Token, error) {
	user, err := as.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, as.secretKey, as.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &models.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// LoginSession opens a browser session
func (as *AuthService) LoginSession(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := as.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return as.sessions.Create(user.ID)
}

// Logout ends a browser session
func (as *AuthService) Logout(sessionID string) error {
	return as.sessions.Delete(sessionID)
}

// UserFromToken resolves a bearer token to an active user
func (as *AuthService) UserFromToken(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, as.secretKey)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return as.activeUser(ctx, userID)
}

// UserFromSession resolves a session cookie to an active user
func (as *AuthService) UserFromSession(ctx context.Context, sessionID string) (*models.User, error) {
	sess, err := as.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return as.activeUser(ctx, sess.UserID)
}

func (as *AuthService) activeUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := as.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}
