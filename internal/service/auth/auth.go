package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/intakeai/intakeai_backend/config"
	"github.com/intakeai/intakeai_backend/internal/repo"
	entrefreshtoken "github.com/intakeai/intakeai_backend/internal/repo/refreshtoken"
	entuser "github.com/intakeai/intakeai_backend/internal/repo/user"
	"github.com/intakeai/intakeai_backend/pkg/crypto"
	pasetotoken "github.com/intakeai/intakeai_backend/pkg/paseto"
	"github.com/intakeai/intakeai_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	PracticeName string
	Title        string
}

type LoginRequest struct {
	Email    string
	Password string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*repo.User, *AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*repo.User, *AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	GetUser(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*repo.User, *AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if !reEmail.MatchString(req.Email) {
		return nil, nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().Where(entuser.Email(req.Email)).Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	q := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetPracticeName(strings.TrimSpace(req.PracticeName))

	if req.Title != "" {
		q = q.SetTitle(req.Title)
	}

	u, err := q.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*repo.User, *AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.db.User.Query().Where(entuser.Email(req.Email)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	// Check lockout
	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, nil, ErrAccountLocked
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, nil, ErrInvalidCredentials
	}

	// Reset failure counters
	now := time.Now()
	u, err = s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(now).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("update login state: %w", err)
	}

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Reject refresh tokens revoked at logout
	tokenHash := crypto.Hash(refreshToken)
	rt, err := s.db.RefreshToken.Query().
		Where(entrefreshtoken.TokenHash(tokenHash)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	if rt.RevokedAt != nil {
		return nil, ErrInvalidToken
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's perspective
		slog.DebugContext(ctx, "logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	// Mark revoked in DB (audit, best-effort)
	now := time.Now()
	_, err = s.db.RefreshToken.Update().
		Where(entrefreshtoken.SessionID(sessionID.String()), entrefreshtoken.RevokedAtIsNil()).
		SetRevokedAt(now).
		Save(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to revoke refresh token audit row", "session_id", sessionID, "error", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// GetUser / ChangePassword
// ---------------------------------------------------------------------------

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := password.Verify(u.PasswordHash, req.CurrentPassword); err != nil {
		return ErrWrongPassword
	}
	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.User.UpdateOne(u).SetPasswordHash(newHash).Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	// Store in Redis
	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// Issue tokens
	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	expiresAt := time.Now().Add(refreshTTL)
	_, err = s.db.RefreshToken.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetTokenHash(crypto.Hash(refresh)).
		SetExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to persist refresh token audit row", "session_id", sessionID, "error", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts)

	if attempts >= maxLoginAttempts {
		lockUntil := time.Now().Add(accountLockMins * time.Minute)
		upd = upd.SetLockedUntil(lockUntil)
	}
	if _, err := upd.Save(ctx); err != nil {
		slog.WarnContext(ctx, "failed to record failed login attempt", "user_id", u.ID, "error", err)
	}
}
