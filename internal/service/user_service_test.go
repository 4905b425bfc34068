package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"placeshare/internal/auth"
	apperrors "placeshare/internal/errors"
	"placeshare/internal/model"
)

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(users *MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful signup",
			email: "test@example.com",
			setupMock: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "duplicate email is rejected before insert",
			email: "existing@example.com",
			setupMock: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "existing@example.com").
					Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			svc := NewUserService(mockUsers, auth.NewJWTService("test-secret"), new(MockTokenStore))
			user, err := svc.Signup(context.Background(), "tester", tt.email, "password123", "/uploads/x.png")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password123", user.PasswordHash)
				assert.Empty(t, user.Places)
				assert.NotNil(t, user.Places)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	known := &model.User{
		Username:     "tester",
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(users *MockUserRepository, tokens *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(known, nil)
				tokens.On("StoreRefreshToken", mock.Anything, mock.Anything, known.ID.String(), known.Email, mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(known, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockTokens := new(MockTokenStore)
			tt.setupMock(mockUsers, mockTokens)

			svc := NewUserService(mockUsers, auth.NewJWTService("test-secret"), mockTokens)
			accessToken, refreshToken, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.Equal(t, known.Email, user.Email)
			}

			mockUsers.AssertExpectations(t)
			mockTokens.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestUserService_LoginFailuresIndistinguishable(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("FindByEmail", mock.Anything, "known@example.com").Return(&model.User{
		Email:        "known@example.com",
		PasswordHash: string(hashedPassword),
	}, nil)

	svc := NewUserService(mockUsers, auth.NewJWTService("test-secret"), new(MockTokenStore))

	_, _, _, errMissing := svc.Login(context.Background(), "missing@example.com", "password123")
	_, _, _, errWrongPass := svc.Login(context.Background(), "known@example.com", "wrong-password")

	assert.Equal(t, errMissing, errWrongPass)
}
