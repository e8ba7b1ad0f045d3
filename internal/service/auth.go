package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/LazyReserve/internal/auth"
	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const minPasswordLen = 8

type AuthService struct {
	repo   ports.UserRepo
	tokens ports.TokenIssuer
	logger logger.Logger
}

func NewAuthService(repo ports.UserRepo, tokens ports.TokenIssuer, logger logger.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	email := domain.NormalizeEmail(input.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up", logger.String("user_id", user.ID))

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	userID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}

	if _, err = s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.TokenPair{}, fmt.Errorf("%w: user no longer exists", domain.ErrUnauthorized)
		}
		return domain.TokenPair{}, fmt.Errorf("get user: %w", err)
	}

	return s.tokens.Issue(userID)
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.User, error) {
	if err := s.repo.UpdateProfile(ctx, userID, input); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.repo.GetByID(ctx, userID)
}

func (s *AuthService) issue(user *domain.User) (*domain.AuthResult, error) {
	tokens, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	return &domain.AuthResult{Tokens: tokens, User: *user}, nil
}
