package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, input LoginInput) (*AuthResponse, error)
	GetUser(ctx context.Context, id string) (*User, error)
}

type AuthServiceImpl struct {
	UserRepo UserRepository
	validate *validator.Validate
}

func NewAuthService(userRepo UserRepository) AuthService {
	return &AuthServiceImpl{
		UserRepo: userRepo,
		validate: validator.New(),
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid registration: %v", err)
	}

	if existing, _ := s.UserRepo.FindByEmail(ctx, input.Email); existing != nil {
		return nil, apperr.Validation("email %s already registered", input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "Student"
	}

	user := &User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		IsActive:     true,
	}
	if input.DojaangID != "" {
		oid, err := primitive.ObjectIDFromHex(input.DojaangID)
		if err != nil {
			return nil, apperr.Validation("invalid dojaang id %q", input.DojaangID)
		}
		user.DojaangID = oid
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid login: %v", err)
	}

	user, err := s.UserRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)
	}

	if !user.IsActive {
		return nil, errors.New("account inactive")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user}, nil
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, id string) (*User, error) {
	return s.UserRepo.Get(ctx, id)
}
