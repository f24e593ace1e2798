package usecase

import (
	"context"
	"testing"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/pkg/apperror"
	"airline-booking/pkg/token"
	"airline-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newAuthServiceForTest(userRepo *MockUserRepository, sessionRepo *MockSessionRepository) AuthService {
	repo := &repository.Repository{
		User:    userRepo,
		Session: sessionRepo,
	}
	tokenManager := token.NewManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24})
	return NewAuthService(repo, tokenManager, zap.NewNop())
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)

	userRepo.On("FindByEmail", mock.Anything, "dewi@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	service := newAuthServiceForTest(userRepo, sessionRepo)

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Email:     "dewi@example.com",
		Password:  "secret123",
		FirstName: "Dewi",
		LastName:  "Santoso",
	}, "test-agent", "10.0.0.1")

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "dewi@example.com", resp.Email)
	assert.Equal(t, entity.UserRoleCustomer, resp.Role)
	// Registration signs the user in immediately
	assert.NotEmpty(t, resp.Token)
	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)

	existing := &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Email: "dewi@example.com",
	}
	userRepo.On("FindByEmail", mock.Anything, "dewi@example.com").Return(existing, nil)

	service := newAuthServiceForTest(userRepo, new(MockSessionRepository))

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Email:     "dewi@example.com",
		Password:  "secret123",
		FirstName: "Dewi",
		LastName:  "Santoso",
	}, "", "")

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)

	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "dewi@example.com",
		PasswordHash: hash,
		FirstName:    "Dewi",
		LastName:     "Santoso",
		Role:         entity.UserRoleCustomer,
		Status:       entity.UserStatusActive,
	}

	userRepo.On("FindByEmail", mock.Anything, "dewi@example.com").Return(user, nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	service := newAuthServiceForTest(userRepo, sessionRepo)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "dewi@example.com",
		Password: "secret123",
	}, "test-agent", "10.0.0.1")

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID.String(), resp.UserID)
	sessionRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)

	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "dewi@example.com",
		PasswordHash: hash,
		Status:       entity.UserStatusActive,
	}
	userRepo.On("FindByEmail", mock.Anything, "dewi@example.com").Return(user, nil)

	service := newAuthServiceForTest(userRepo, sessionRepo)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "dewi@example.com",
		Password: "wrong-password",
	}, "", "")

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	userRepo := new(MockUserRepository)

	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	service := newAuthServiceForTest(userRepo, new(MockSessionRepository))

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	}, "", "")

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
	// Unknown email and wrong password read identically
	assert.EqualError(t, err, "invalid email or password")
}

func TestLogin_InactiveAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)

	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "dewi@example.com",
		PasswordHash: hash,
		Status:       entity.UserStatusSuspended,
	}
	userRepo.On("FindByEmail", mock.Anything, "dewi@example.com").Return(user, nil)

	service := newAuthServiceForTest(userRepo, sessionRepo)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "dewi@example.com",
		Password: "secret123",
	}, "", "")

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "suspended")
}

func TestLogout_RevokesSession(t *testing.T) {
	sessionRepo := new(MockSessionRepository)

	sessionID := uuid.New()
	sessionRepo.On("Revoke", mock.Anything, sessionID).Return(nil)

	service := newAuthServiceForTest(new(MockUserRepository), sessionRepo)

	err := service.Logout(context.Background(), sessionID)

	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
}
