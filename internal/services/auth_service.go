package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// AuthService handles registration, email verification, and login.
type AuthService struct {
	userRepo  repositories.UserRepository
	mailer    Mailer
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, mailer Mailer, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		mailer:    mailer,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates an unverified customer account and dispatches the
// verification message. Mail delivery is fire-and-forget.
func (s *AuthService) Register(email, password string) error {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return apperrors.New(apperrors.KindBadRequest, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to hash password", err)
	}

	token := uuid.NewString()
	user := &models.User{
		Email:             email,
		HashedPassword:    string(hashed),
		Role:              models.RoleCustomer,
		IsActive:          true,
		VerificationToken: &token,
	}
	if err := s.userRepo.Create(user); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationEmail(user.Email, token); err != nil {
		log.Printf("warning: failed to dispatch verification email for %s: %v", user.Email, err)
	}
	return nil
}

// VerifyEmail marks the account verified when the single-use token matches,
// clears the token, and issues an access token.
func (s *AuthService) VerifyEmail(email, token string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user.VerificationToken == nil || *user.VerificationToken != token {
		return "", apperrors.New(apperrors.KindBadRequest, "invalid verification token")
	}

	user.IsVerified = true
	user.VerificationToken = nil
	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}
	return s.issueToken(user.Email)
}

// Login checks credentials and returns an access token for verified, active
// accounts. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", apperrors.New(apperrors.KindUnauthorized, "incorrect credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", apperrors.New(apperrors.KindUnauthorized, "incorrect credentials")
	}
	if !user.IsVerified {
		return "", apperrors.New(apperrors.KindForbidden, "email not verified")
	}
	if !user.IsActive {
		return "", apperrors.New(apperrors.KindForbidden, "account is inactive")
	}
	return s.issueToken(user.Email)
}

// issueToken signs a time-limited HS256 token carrying the email as subject.
func (s *AuthService) issueToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "failed to generate token", err)
	}
	return signed, nil
}

// ValidateToken parses a bearer token and returns its subject email.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("invalid token: missing subject")
	}
	return email, nil
}
