package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"contentshop/internal/dto"
	"contentshop/internal/model"
	"contentshop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type UserService interface {
	Register(ctx context.Context, email, password, name string) (*dto.SessionResponse, error)
	Login(ctx context.Context, email, password string) (*dto.SessionResponse, error)
	GetProfile(ctx context.Context, userID string) (*dto.UserProfile, error)
}

type userServiceImpl struct {
	userRepo   repository.UserRepository
	secret     []byte
	sessionTTL time.Duration
}

func NewUserService(userRepo repository.UserRepository, secret string, sessionTTL time.Duration) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, email, password, name string) (*dto.SessionResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         string(model.RoleCustomer),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	return s.mintSession(user)
}

func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.mintSession(user)
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	return &dto.UserProfile{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

// mintSession signs the claims the old system used to trust unsigned.
func (s *userServiceImpl) mintSession(user *model.User) (*dto.SessionResponse, error) {
	claims := SessionClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &dto.SessionResponse{
		Token: token,
		User: &dto.UserProfile{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}
