package usecase

import (
	"context"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/apperr"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & sessionRepo
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperr.Internal("check username", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("username already taken")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, apperr.Internal("create user", err)
	}

	// Auto login after register
	session, err := s.createSession(ctx, user)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Registration succeeded, account is usable via login
		session = nil
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return convertAuthResponse(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("find user", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, apperr.Forbidden("account is deactivated")
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, apperr.Internal("create session", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return convertAuthResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if _, err := utils.ParseUUID(token); err != nil {
		return apperr.Unauthorized("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Warn("Failed to revoke session", zap.Error(err))
		return apperr.Unauthorized("session not found or already revoked")
	}

	s.log.Info("User logged out")
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func convertAuthResponse(user *entity.User, session *entity.Session) *response.AuthResponse {
	resp := &response.AuthResponse{
		User: response.UserToResponse(user),
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = &session.ExpiresAt
	}

	return resp
}
