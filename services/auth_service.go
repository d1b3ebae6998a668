package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/repository"
	"github.com/solvera/storefront-api/validation"
)

const tokenLifetime = 24 * time.Hour

// AuthService registers and authenticates users. Field-level validation
// failures come back as a non-nil errors map with a nil ServiceError; the
// handler renders them as a 400 with per-field messages.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, map[string]string, *ServiceError)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, map[string]string, *ServiceError)
}

type authServiceImpl struct {
	users     repository.UserRepo
	jwtSecret []byte
	logger    *zap.Logger
}

func NewAuthService(users repository.UserRepo, jwtSecret string, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, map[string]string, *ServiceError) {
	form := validation.ValidateRegistrationForm(
		req.FirstName,
		req.LastName,
		req.Email,
		req.Password,
		req.ConfirmPassword,
	)
	if !form.Valid {
		return nil, form.Errors, nil
	}

	email := strings.TrimSpace(req.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to look up user by email", zap.Error(err))
		return nil, nil, errInternal("Failed to create account")
	}
	if existing != nil {
		return nil, nil, errConflict("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, nil, errInternal("Failed to create account")
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		FirstName:    validation.SanitizeName(req.FirstName),
		LastName:     validation.SanitizeName(req.LastName),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, nil, errInternal("Failed to create account")
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, nil, errInternal("Failed to create account")
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return &models.AuthResponse{Token: token, User: user}, nil, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, map[string]string, *ServiceError) {
	errors := make(map[string]string)
	if r := validation.ValidateEmail(req.Email); !r.Valid {
		errors["email"] = r.Error
	}
	if r := validation.ValidatePassword(req.Password, false); !r.Valid {
		errors["password"] = r.Error
	}
	if len(errors) > 0 {
		return nil, errors, nil
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		s.logger.Error("Failed to look up user by email", zap.Error(err))
		return nil, nil, errInternal("Failed to sign in")
	}
	if user == nil {
		return nil, nil, errUnauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, errUnauthorized("Invalid email or password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, nil, errInternal("Failed to sign in")
	}

	return &models.AuthResponse{Token: token, User: user}, nil, nil
}

func (s *authServiceImpl) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
