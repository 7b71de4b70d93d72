package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/repository"
	"github.com/Xebarter/Manziz/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a customer account. Duplicate emails are rejected.
func (s *AuthService) Register(email, password, fullName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	v := apperr.NewValidation()
	if email == "" {
		v.Add("email", "email is required")
	}
	if len(password) < 6 {
		v.Add("password", "password must be at least 6 characters")
	}
	if v.Has() {
		return nil, v
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(fullName),
		PhoneNumber:  strings.TrimSpace(phone),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks customer credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, &apperr.AuthError{Reason: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, &apperr.AuthError{Reason: "invalid credentials"}
	}

	token, err := utils.GenerateToken(user.ID, "customer", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// LoginAdmin checks against the admins table and issues an admin-role JWT.
func (s *AuthService) LoginAdmin(email, password string) (string, *entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.userRepo.FindAdminByEmail(email)
	if err != nil {
		return "", nil, &apperr.AuthError{Reason: "invalid admin credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, &apperr.AuthError{Reason: "invalid admin credentials"}
	}

	token, err := utils.GenerateToken(admin.ID, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, admin, nil
}
