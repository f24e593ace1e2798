package usecase

import (
	"context"
	"fmt"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/internal/dto/response"
	"airline-booking/pkg/apperror"
	"airline-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
	GetSavedPassengers(ctx context.Context, userID uuid.UUID) ([]response.PassengerResponse, error)
	CreateSavedPassenger(ctx context.Context, userID uuid.UUID, req *request.CreatePassengerRequest) (*response.PassengerResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	update := repository.UserProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := s.repo.User.UpdateProfile(ctx, userID, update); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	user, err = s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return apperror.Validation("validation failed", errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperror.Forbidden("current password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, hashed); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

func (s *userService) GetSavedPassengers(ctx context.Context, userID uuid.UUID) ([]response.PassengerResponse, error) {
	passengers, err := s.repo.Passenger.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get saved passengers", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get saved passengers: %w", err)
	}

	responses := make([]response.PassengerResponse, len(passengers))
	for i, p := range passengers {
		responses[i] = response.PassengerToResponse(p)
	}
	return responses, nil
}

func (s *userService) CreateSavedPassenger(ctx context.Context, userID uuid.UUID, req *request.CreatePassengerRequest) (*response.PassengerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create passenger validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	now := time.Now()
	owner := userID
	passenger := &entity.Passenger{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:         &owner,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PassportNumber: req.PassportNumber,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperror.Validation(fmt.Sprintf("invalid date of birth %s", *req.DateOfBirth), nil)
		}
		passenger.DateOfBirth = &dob
	}

	if err := s.repo.Passenger.Create(ctx, passenger); err != nil {
		s.log.Error("Failed to create passenger", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create passenger: %w", err)
	}

	s.log.Info("Saved passenger created",
		zap.String("passenger_id", passenger.ID.String()),
		zap.String("user_id", userID.String()),
	)

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}
