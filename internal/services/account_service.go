package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (response_models.UserProfileResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.TokenResponse, error)
	GetProfile(ctx context.Context, userId string) (response_models.UserProfileResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	issuer   *utils.TokenIssuer
}

func NewAccountService(userRepo repositories.UserRepository, issuer *utils.TokenIssuer) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (response_models.UserProfileResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.UserProfileResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.UserProfileResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.UserProfileResponse{}, err
	}

	user := &db_models.User{
		Email:        email,
		FullName:     request.FullName,
		PasswordHash: hashedPassword,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		logger.FromContext(ctx).Error("insert user", zap.Error(err))
		return response_models.UserProfileResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewUserProfileResponse(*user), nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.TokenResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return response_models.TokenResponse{}, utils.ErrDatabaseError
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.issuer.CreateToken(user.ID, user.Email)
	if err != nil {
		return response_models.TokenResponse{}, err
	}

	return response_models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(a.issuer.TTL().Seconds()),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userId string) (response_models.UserProfileResponse, error) {
	user, err := a.userRepo.FindById(ctx, userId)
	if err != nil {
		return response_models.UserProfileResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.UserProfileResponse{}, utils.ErrUserNotFound
	}
	return response_models.NewUserProfileResponse(*user), nil
}
