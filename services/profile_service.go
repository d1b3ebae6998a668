package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/repository"
	"github.com/solvera/storefront-api/validation"
)

// ProfileService reads and updates the signed-in user's account document.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, *ServiceError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, map[string]string, *ServiceError)
}

type profileServiceImpl struct {
	users  repository.UserRepo
	logger *zap.Logger
}

func NewProfileService(users repository.UserRepo, logger *zap.Logger) ProfileService {
	return &profileServiceImpl{
		users:  users,
		logger: logger,
	}
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, *ServiceError) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to fetch user", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errInternal("Failed to fetch profile")
	}
	if user == nil {
		return nil, errNotFound("User not found")
	}
	return user, nil
}

// UpdateProfile validates the whole form, then persists the sanitized
// values. Field errors come back as a map with a nil ServiceError.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, map[string]string, *ServiceError) {
	form := validation.ValidateProfileForm(req.FirstName, req.LastName, req.Address, req.PhoneNumber)
	if !form.Valid {
		return nil, form.Errors, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to fetch user", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, nil, errInternal("Failed to update profile")
	}
	if user == nil {
		return nil, nil, errNotFound("User not found")
	}

	phone := validation.ValidatePhone(req.PhoneNumber)
	updates := map[string]interface{}{
		"first_name":   validation.SanitizeName(req.FirstName),
		"last_name":    validation.SanitizeName(req.LastName),
		"address":      validation.SanitizeString(req.Address),
		"phone_number": phone.Sanitized,
	}
	if err := s.users.Update(ctx, userID, updates); err != nil {
		s.logger.Error("Failed to update user", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, nil, errInternal("Failed to update profile")
	}

	user.FirstName = updates["first_name"].(string)
	user.LastName = updates["last_name"].(string)
	user.Address = updates["address"].(string)
	user.PhoneNumber = phone.Sanitized

	s.logger.Info("Profile updated", zap.String("user_id", userID.String()))
	return user, nil, nil
}
