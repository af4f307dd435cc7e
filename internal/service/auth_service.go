package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"atelier/internal/auth"
	"atelier/internal/db"
	apperrors "atelier/internal/errors"
	"atelier/internal/model"
	"atelier/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication and sessions.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ValidateSession(ctx context.Context, token string) (*model.Session, error)
	Logout(ctx context.Context, session *model.Session) error
	Me(ctx context.Context, session *model.Session) (*model.User, error)
	RegisterAdmin(ctx context.Context, email, username, password string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	now        func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		now:        time.Now,
	}
}

// Authenticate checks credentials. The two failure kinds stay distinct.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidPassword
	}
	return user, nil
}

// Login authenticates the user and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		log.Warn().Str("email", email).Err(err).Msg("login failed")
		return "", nil, err
	}

	role := ""
	if user.Role != nil {
		role = user.Role.Name
	}

	tokenID, token, err := s.jwtService.GenerateSessionToken(user.ID, user.Email, role)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	log.Info().Uint("user_id", user.ID).Str("token_id", tokenID).Msg("session started")
	return token, user, nil
}

// ValidateSession verifies a session token and rejects revoked ones.
func (s *authService) ValidateSession(ctx context.Context, token string) (*model.Session, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
	}

	revoked, err := s.tokenStore.IsSessionRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: session revoked", apperrors.ErrUnauthenticated)
	}
	return claims.Session(), nil
}

// Logout revokes the session token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, session *model.Session) error {
	if session == nil {
		return apperrors.ErrUnauthenticated
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if session.ExpiresAt.IsZero() {
		ttl = s.jwtService.TTL()
	}
	if err := s.tokenStore.RevokeSession(ctx, session.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	log.Info().Uint("user_id", session.UserID).Str("token_id", session.TokenID).Msg("session revoked")
	return nil
}

// Me returns the user behind the session.
func (s *authService) Me(ctx context.Context, session *model.Session) (*model.User, error) {
	if session == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", session.UserID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// RegisterAdmin creates a user holding the Admin role. Roles must exist already.
func (s *authService) RegisterAdmin(ctx context.Context, email, username, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "required"
	}
	if password == "" {
		fields["password"] = "required"
	}
	if len(fields) > 0 {
		return nil, &apperrors.ValidationError{Fields: fields}
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrDuplicateName)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	role, err := s.roleRepo.FindByName(ctx, model.RoleAdmin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %s: %w", model.RoleAdmin, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find admin role: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hashed),
		RoleID:       role.ID,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrDuplicateName)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Info().Uint("user_id", user.ID).Str("email", email).Msg("admin registered")
	return user, nil
}
