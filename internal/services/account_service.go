package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursepulse/internal/models/db_models"
	"coursepulse/internal/models/request_models"
	"coursepulse/internal/models/response_models"
	"coursepulse/internal/repositories"
	"coursepulse/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleStudent, // signup never grants admin
	}
	// The pre-check races with concurrent signups; the unique index is the
	// authority.
	if err := a.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewAccountResponse(user)
	return &resp, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if user.Blocked {
		return nil, utils.ErrAccountBlocked
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  response_models.NewAccountResponse(user),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := response_models.NewAccountResponse(user)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	user.Name = request.Name
	user.Phone = request.Phone
	user.Address = request.Address
	if request.DateOfBirth != "" {
		dob, parseErr := time.Parse("2006-01-02", request.DateOfBirth)
		if parseErr == nil {
			user.DateOfBirth = &dob
		}
	} else {
		user.DateOfBirth = nil
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewAccountResponse(user)
	return &resp, nil
}

func (a *AccountService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, currentPassword); err != nil {
		return utils.ErrWrongPassword
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
