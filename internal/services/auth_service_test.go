package services_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(id uint, role models.UserRole) error {
	args := m.Called(id, role)
	return args.Error(0)
}

// MockMailer records dispatched verification emails.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(email, token string) error {
	args := m.Called(email, token)
	return args.Error(0)
}

const testJWTSecret = "test_jwt_secret"

func newAuthService(repo *MockUserRepository, mailer *MockMailer) *services.AuthService {
	return services.NewAuthService(repo, mailer, testJWTSecret, time.Hour)
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func parseSubject(t *testing.T, tokenString string) string {
	t.Helper()
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	subject, _ := claims["sub"].(string)
	return subject
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := newAuthService(mockRepo, mockMailer)

	var created *models.User
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, apperrors.New(apperrors.KindNotFound, "user not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.User)
	}).Return(nil).Once()
	mockMailer.On("SendVerificationEmail", "new@example.com", mock.AnythingOfType("string")).Return(nil).Once()

	err := authService.Register("new@example.com", "password123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockMailer.AssertExpectations(t)

	// The stored user is an unverified customer holding a verification token
	// and a bcrypt hash, never the plain password.
	assert.Equal(t, models.RoleCustomer, created.Role)
	assert.False(t, created.IsVerified)
	assert.True(t, created.IsActive)
	assert.NotNil(t, created.VerificationToken)
	assert.NotEmpty(t, *created.VerificationToken)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.HashedPassword), []byte("password123")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := newAuthService(mockRepo, mockMailer)

	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: 1, Email: "taken@example.com"}, nil).Once()

	err := authService.Register("taken@example.com", "password123")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockMailer.AssertNotCalled(t, "SendVerificationEmail", mock.Anything, mock.Anything)
}

func TestAuthService_VerifyEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo, new(MockMailer))

	token := "verification-token"
	user := &models.User{ID: 1, Email: "user@example.com", VerificationToken: &token}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	mockRepo.On("Update", user).Return(nil).Once()

	accessToken, err := authService.VerifyEmail(user.Email, token)
	assert.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.VerificationToken)
	assert.Equal(t, user.Email, parseSubject(t, accessToken))
	mockRepo.AssertExpectations(t)

	// The token is single-use: a second attempt finds it cleared.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.VerifyEmail(user.Email, token)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestAuthService_VerifyEmail_BadToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo, new(MockMailer))

	token := "right-token"
	user := &models.User{ID: 1, Email: "user@example.com", VerificationToken: &token}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err := authService.VerifyEmail(user.Email, "wrong-token")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
	assert.False(t, user.IsVerified)

	mockRepo.On("GetByEmail", "missing@example.com").Return(nil, apperrors.New(apperrors.KindNotFound, "user not found")).Once()
	_, err = authService.VerifyEmail("missing@example.com", token)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo, new(MockMailer))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:             1,
		Email:          "user@example.com",
		HashedPassword: string(hashed),
		IsActive:       true,
		IsVerified:     true,
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.Email, parseSubject(t, token))

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login(user.Email, "wrongpassword")
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, apperrors.New(apperrors.KindNotFound, "user not found")).Once()
	_, err = authService.Login("nobody@example.com", "password123")
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestAuthService_Login_Gating(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo, new(MockMailer))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	unverified := &models.User{Email: "unverified@example.com", HashedPassword: string(hashed), IsActive: true}
	mockRepo.On("GetByEmail", unverified.Email).Return(unverified, nil).Once()
	_, err := authService.Login(unverified.Email, "password123")
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	inactive := &models.User{Email: "inactive@example.com", HashedPassword: string(hashed), IsVerified: true}
	mockRepo.On("GetByEmail", inactive.Email).Return(inactive, nil).Once()
	_, err = authService.Login(inactive.Email, "password123")
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := newAuthService(new(MockUserRepository), new(MockMailer))

	valid := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	validString, _ := valid.SignedString([]byte(testJWTSecret))

	email, err := authService.ValidateToken(validString)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", email)

	_, err = authService.ValidateToken("not.a.token")
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@example.com",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubjectString, _ := noSubject.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(noSubjectString)
	assert.Error(t, err)
}
