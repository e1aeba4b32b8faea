// league/service/account_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openfooty/league-api/league/auth"
	"github.com/openfooty/league-api/shared/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountService handles user and admin registration and login.
type AccountService struct {
	users      UserStore
	admins     AdminStore
	tokens     *auth.TokenIssuer
	bcryptCost int
	logger     zerolog.Logger
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(users UserStore, admins AdminStore, tokens *auth.TokenIssuer, bcryptCost int, logger zerolog.Logger) *AccountService {
	return &AccountService{
		users:      users,
		admins:     admins,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// RegisterInput carries the validated fields for a new user account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterAdminInput carries the validated fields for a new admin account.
type RegisterAdminInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CredentialsInput is an email/password pair.
type CredentialsInput struct {
	Email    string
	Password string
}

// RegisterUser creates a user account and returns it with a fresh token.
func (as *AccountService) RegisterUser(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(in.Email)

	existing, err := as.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", dependency("user lookup", err)
	}
	if existing != nil {
		return nil, "", &ConflictError{Message: "user already exists"}
	}

	hash, err := auth.HashPassword(in.Password, as.bcryptCost)
	if err != nil {
		return nil, "", dependency("password hashing", err)
	}

	user := &models.User{
		Name:      strings.ToLower(in.Name),
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if err := as.users.CreateUser(ctx, user); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return nil, "", &ConflictError{Message: "user already exists"}
		}
		return nil, "", dependency("user insert", err)
	}

	token, err := as.tokens.Issue(user.ID.Hex(), "", false)
	if err != nil {
		return nil, "", dependency("token issuance", err)
	}
	return user, token, nil
}

// LoginUser verifies user credentials and returns the account with a token.
func (as *AccountService) LoginUser(ctx context.Context, in CredentialsInput) (*models.User, string, error) {
	user, err := as.users.GetUserByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", &NotFoundError{Message: "invalid login credentials"}
		}
		return nil, "", dependency("user lookup", err)
	}

	if !auth.VerifyPassword(user.Password, in.Password) {
		return nil, "", &UnauthorizedError{Message: "invalid login credentials"}
	}

	token, err := as.tokens.Issue(user.ID.Hex(), "", false)
	if err != nil {
		return nil, "", dependency("token issuance", err)
	}
	return user, token, nil
}

// RegisterAdmin creates an admin account and returns it with a fresh token.
func (as *AccountService) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*models.Admin, string, error) {
	email := strings.ToLower(in.Email)

	existing, err := as.admins.GetAdminByEmail(ctx, email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", dependency("admin lookup", err)
	}
	if existing != nil {
		return nil, "", &ConflictError{Message: "email already exists"}
	}

	hash, err := auth.HashPassword(in.Password, as.bcryptCost)
	if err != nil {
		return nil, "", dependency("password hashing", err)
	}

	admin := &models.Admin{
		Name:      strings.ToLower(in.Name),
		Email:     email,
		Password:  hash,
		Role:      strings.ToLower(in.Role),
		CreatedAt: time.Now().UTC(),
	}
	if err := as.admins.CreateAdmin(ctx, admin); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return nil, "", &ConflictError{Message: "email already exists"}
		}
		return nil, "", dependency("admin insert", err)
	}

	token, err := as.tokens.Issue(admin.ID.Hex(), admin.Role, true)
	if err != nil {
		return nil, "", dependency("token issuance", err)
	}
	return admin, token, nil
}

// LoginAdmin verifies admin credentials and returns the account with a token.
func (as *AccountService) LoginAdmin(ctx context.Context, in CredentialsInput) (*models.Admin, string, error) {
	admin, err := as.admins.GetAdminByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", &NotFoundError{Message: "invalid login credentials"}
		}
		return nil, "", dependency("admin lookup", err)
	}

	if !auth.VerifyPassword(admin.Password, in.Password) {
		return nil, "", &UnauthorizedError{Message: "invalid login credentials"}
	}

	token, err := as.tokens.Issue(admin.ID.Hex(), admin.Role, true)
	if err != nil {
		return nil, "", dependency("token issuance", err)
	}
	return admin, token, nil
}
