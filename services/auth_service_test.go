package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/services"
)

const testSecret = "test-signing-secret"

func newAuthService(users *mockUserRepo) services.AuthService {
	logger, _ := zap.NewDevelopment()
	return services.NewAuthService(users, testSecret, logger)
}

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "john@example.com",
		Password:        "Abcdefg1",
		ConfirmPassword: "Abcdefg1",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newMockUserRepo()
	svc := newAuthService(users)

	resp, fieldErrors, svcErr := svc.Register(context.Background(), validRegisterRequest())

	require.Nil(t, svcErr)
	require.Empty(t, fieldErrors)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "John", resp.User.FirstName)
	assert.Equal(t, "john@example.com", resp.User.Email)
	assert.Len(t, users.users, 1)

	// Stored hash verifies against the original password.
	err := bcrypt.CompareHashAndPassword([]byte(resp.User.PasswordHash), []byte("Abcdefg1"))
	assert.NoError(t, err)
}

func TestAuthService_Register_TokenCarriesUserClaims(t *testing.T) {
	svc := newAuthService(newMockUserRepo())

	resp, _, svcErr := svc.Register(context.Background(), validRegisterRequest())
	require.Nil(t, svcErr)

	token, err := jwt.Parse(resp.Token, func(_ *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["user_id"])
	assert.Equal(t, "john@example.com", claims["email"])
}

func TestAuthService_Register_SanitizesNames(t *testing.T) {
	users := newMockUserRepo()
	svc := newAuthService(users)

	req := validRegisterRequest()
	req.FirstName = "  Anne-Marie "
	req.LastName = "O'Brien  "

	resp, fieldErrors, svcErr := svc.Register(context.Background(), req)
	require.Nil(t, svcErr)
	require.Empty(t, fieldErrors)
	assert.Equal(t, "Anne-Marie", resp.User.FirstName)
	assert.Equal(t, "O'Brien", resp.User.LastName)
}

func TestAuthService_Register_InvalidForm(t *testing.T) {
	users := newMockUserRepo()
	svc := newAuthService(users)

	req := &models.RegisterRequest{
		FirstName:       "",
		LastName:        "Doe",
		Email:           "not-an-email",
		Password:        "weak",
		ConfirmPassword: "different",
	}

	resp, fieldErrors, svcErr := svc.Register(context.Background(), req)

	assert.Nil(t, resp)
	assert.Nil(t, svcErr)
	assert.Contains(t, fieldErrors, "firstName")
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "password")
	assert.Contains(t, fieldErrors, "confirmPassword")
	assert.Empty(t, users.users)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	svc := newAuthService(users)

	_, _, svcErr := svc.Register(context.Background(), validRegisterRequest())
	require.Nil(t, svcErr)

	resp, fieldErrors, svcErr := svc.Register(context.Background(), validRegisterRequest())
	assert.Nil(t, resp)
	assert.Nil(t, fieldErrors)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newMockUserRepo()
	svc := newAuthService(users)

	_, _, svcErr := svc.Register(context.Background(), validRegisterRequest())
	require.Nil(t, svcErr)

	resp, fieldErrors, svcErr := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "john@example.com",
		Password: "Abcdefg1",
	})

	require.Nil(t, svcErr)
	require.Empty(t, fieldErrors)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "john@example.com", resp.User.Email)
}

func TestAuthService_Login_WeakExistingPasswordStillAccepted(t *testing.T) {
	// Strength rules only apply at registration. An account whose password
	// predates them must still be able to sign in.
	users := newMockUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("weak"), bcrypt.DefaultCost)
	legacy := &models.User{ID: uuid.New(), Email: "old@example.com", PasswordHash: string(hash)}
	users.users[legacy.ID] = legacy

	svc := newAuthService(users)

	resp, fieldErrors, svcErr := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "old@example.com",
		Password: "weak",
	})

	require.Nil(t, svcErr)
	require.Empty(t, fieldErrors)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newMockUserRepo()
	svc := newAuthService(users)

	_, _, svcErr := svc.Register(context.Background(), validRegisterRequest())
	require.Nil(t, svcErr)

	resp, _, svcErr := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "john@example.com",
		Password: "WrongPass1",
	})

	assert.Nil(t, resp)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
	assert.Equal(t, "Invalid email or password", svcErr.Message)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newMockUserRepo())

	resp, _, svcErr := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.Nil(t, resp)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
	// Same message as a wrong password; the response must not reveal whether
	// the account exists.
	assert.Equal(t, "Invalid email or password", svcErr.Message)
}

func TestAuthService_Login_InvalidFields(t *testing.T) {
	svc := newAuthService(newMockUserRepo())

	resp, fieldErrors, svcErr := svc.Login(context.Background(), &models.LoginRequest{})

	assert.Nil(t, resp)
	assert.Nil(t, svcErr)
	assert.Equal(t, "Email is required", fieldErrors["email"])
	assert.Equal(t, "Password is required", fieldErrors["password"])
}
