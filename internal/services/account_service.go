package services

import (
	"context"
	"time"

	"marryday/internal/models/db_models"
	"marryday/internal/models/request_models"
	"marryday/internal/repositories"
	mem "marryday/pkg/memcache"
	"marryday/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Logout(token string)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	revoked     mem.RevokedTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, revoked mem.RevokedTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		revoked:     revoked,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// Logout blacklists the token for the remainder of its lifetime.
func (a *AccountService) Logout(token string) {
	a.revoked.Revoke(token, 24*time.Hour)
}
