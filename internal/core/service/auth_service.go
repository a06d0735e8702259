package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/picode11/user-admin-api/internal/core/domain"
	"github.com/picode11/user-admin-api/internal/core/ports"
)

// dummyHash is compared against when the username is unknown so that login
// latency does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements session-based login, principal resolution and logout.
// The client-facing token is an HS256-signed wrapper around the opaque session
// id held by the SessionStore; the signature keeps the cookie tamper-evident,
// the store lookup keeps it revocable.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	secret   []byte
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, secret string, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, secret: []byte(secret), logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash := dummyHash
	if user != nil {
		hash = user.PasswordHash
	}
	if !CheckPassword(password, hash) || user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	sid, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.signToken(sid)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")
	return token, user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	sid, err := s.parseToken(token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	userID, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		// The session may outlive the record when an admin deletes the user.
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.sessions.Delete(ctx, sid)
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	sid, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}

func (s *AuthService) signToken(sid string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sid})
	return t.SignedString(s.secret)
}

func (s *AuthService) parseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionNotFound
	}
	return sid, nil
}
