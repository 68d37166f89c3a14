package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ariomuse-backend/internal/domains/user"
	"ariomuse-backend/pkg/jwt"
	"ariomuse-backend/pkg/logger"
)

// authService implements user.Service. It owns the one conceptual session:
// a cached snapshot of the signed-in profile, persisted through the
// repository so it survives restarts.
type authService struct {
	repo       user.Repository
	jwtManager *jwt.Manager

	mu      sync.RWMutex
	session *user.UserProfile
}

func NewAuthService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// SignUp registers a new user and signs them in.
func (s *authService) SignUp(ctx context.Context, req user.SignUpRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	_, exists, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrDuplicateUser
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		// Default to the email local part, same as the onboarding flow.
		username = email[:strings.Index(email, "@")]
	}

	newUser := &user.UserProfile{
		ID:                  uuid.New(),
		Email:               email,
		PasswordHash:        string(passwordHash),
		Username:            username,
		OnboardingCompleted: false,
		SubscriptionTier:    user.TierFree,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.setSession(ctx, newUser); err != nil {
		return nil, err
	}

	logger.Info("user signed up", map[string]interface{}{"user_id": newUser.ID})
	return s.authResponse(newUser)
}

// SignIn verifies credentials against the stored bcrypt hash. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *authService) SignIn(ctx context.Context, req user.SignInRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, found, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !found {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := s.setSession(ctx, u); err != nil {
		return nil, err
	}

	return s.authResponse(u)
}

// SignOut clears the session; idempotent.
func (s *authService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *authService) Session() (*user.UserDTO, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, false
	}
	dto := s.session.ToDTO()
	return &dto, true
}

// RestoreSession loads the persisted marker into the in-memory cache.
func (s *authService) RestoreSession(ctx context.Context) error {
	u, found, err := s.repo.LoadSession(ctx)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	s.session = u
	s.mu.Unlock()

	logger.Info("session restored", map[string]interface{}{"user_id": u.ID})
	return nil
}

func (s *authService) GetProfile(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !found {
		return nil, user.ErrUserNotFound
	}
	dto := u.ToDTO()
	return &dto, nil
}

// UpdateProfile merges the patch into the stored record and refreshes the
// session snapshot when the patched user is the active one.
func (s *authService) UpdateProfile(ctx context.Context, id uuid.UUID, patch user.ProfilePatch) (*user.UserDTO, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	u, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !found {
		return nil, user.ErrUserNotFound
	}

	patch.Apply(u)

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.mu.Lock()
	active := s.session != nil && s.session.ID == id
	s.mu.Unlock()
	if active {
		if err := s.setSession(ctx, u); err != nil {
			return nil, err
		}
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *authService) setSession(ctx context.Context, u *user.UserProfile) error {
	s.mu.Lock()
	snapshot := *u
	s.session = &snapshot
	s.mu.Unlock()

	if err := s.repo.SaveSession(ctx, u); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *authService) authResponse(u *user.UserProfile) (*user.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, string(u.SubscriptionTier))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &user.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u.ToDTO(),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
