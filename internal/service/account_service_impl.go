package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/repository"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AccountServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateAccountService(repo repository.UserRepository, config config.Config) AccountService {
	return &AccountServiceImpl{repo: repo, config: config}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AccountServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (resp dto.AuthResponse, err error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return
	}

	email := normalizeEmail(req.Email)
	_, err = s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return resp, errs.ErrEmailAlreadyUsed
	}
	if !errors.Is(err, errs.ErrAccountNotFound) {
		return resp, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	now := time.Now().UTC()
	user := domain.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		HashedPassword: string(hash),
		Role:           role,
		ExternalID:     ulid.Make().String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	user.ID, err = s.repo.AddUser(ctx, user)
	if err != nil {
		return
	}

	return s.authResponse(user)
}

func (s *AccountServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.AuthResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Ctx(ctx).Info().Str("component", "Login").Msg("password mismatch")
		return resp, errs.ErrInvalidCredentialsEmail
	}

	return s.authResponse(user)
}

func (s *AccountServiceImpl) authResponse(user domain.User) (resp dto.AuthResponse, err error) {
	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Name, string(user.Role), s.config.JWTSecret)
	if err != nil {
		return
	}

	return dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AccountServiceImpl) GetUser(ctx context.Context, principal domain.Principal) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, principal.ID)
	if err != nil {
		return
	}

	return dto.NewUserResponse(user), nil
}

func (s *AccountServiceImpl) UpdateUser(ctx context.Context, principal domain.Principal, req dto.UserProfileRequest) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, principal.ID)
	if err != nil {
		return
	}

	if email := normalizeEmail(req.Email); email != "" && email != user.Email {
		existing, err := s.repo.GetUserByEmail(ctx, email)
		if err == nil && existing.ID != user.ID {
			return resp, errs.ErrEmailAlreadyUsed
		}
		if err != nil && !errors.Is(err, errs.ErrAccountNotFound) {
			return resp, err
		}

		user.Email = email
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}

	user.UpdatedAt = time.Now().UTC()
	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return
	}

	return dto.NewUserResponse(user), nil
}
