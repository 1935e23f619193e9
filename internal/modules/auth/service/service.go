package service

import (
	"context"
	"errors"
	"time"

	"anoa.com/clubrank/internal/entity"
	"anoa.com/clubrank/internal/modules/auth/dto"
	"anoa.com/clubrank/internal/modules/auth/session"
	userRepo "anoa.com/clubrank/internal/modules/user/repository"
	"anoa.com/clubrank/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
}

type authService struct {
	users       userRepo.UserRepository
	sessions    session.Store
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

func NewAuthService(users userRepo.UserRepository, sessions session.Store, sessionTTL, rememberTTL time.Duration) AuthService {
	return &authService{
		users:       users,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	ttl := s.sessionTTL
	if input.RememberMe {
		ttl = s.rememberTTL
	}

	sessionUser := dto.SessionUser{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role.Name,
	}

	sessionID, err := s.sessions.Create(ctx, session.Data{
		UserID: sessionUser.ID,
		Email:  sessionUser.Email,
		Name:   sessionUser.Name,
		Role:   sessionUser.Role,
	}, ttl)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{
		User:      sessionUser,
		SessionID: sessionID,
		MaxAge:    int(ttl.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
