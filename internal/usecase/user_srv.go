package usecase

import (
	"context"
	"time"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/apperr"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, actor Actor) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, actor Actor, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, actor Actor) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, apperr.Internal("load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor Actor, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, apperr.Internal("load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	if req.Username != nil && *req.Username != user.Username {
		existing, err := s.userRepo.FindByUsername(ctx, *req.Username)
		if err != nil {
			return nil, apperr.Internal("check username", err)
		}
		if existing != nil {
			return nil, apperr.Conflict("username already taken")
		}
		user.Username = *req.Username
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperr.Internal("update user", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}
