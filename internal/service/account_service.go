package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"movie-browse-server/internal/auth"
	"movie-browse-server/internal/models"
	"movie-browse-server/internal/repository"
)

// API-visible failure modes. The messages are part of the HTTP contract.
var (
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// AccountService handles signup, login and session token issuance.
type AccountService struct {
	users  *repository.UserRepository
	tokens *auth.TokenService
}

// NewAccountService creates a new AccountService.
func NewAccountService(users *repository.UserRepository, tokens *auth.TokenService) *AccountService {
	return &AccountService{users: users, tokens: tokens}
}

// Signup registers a new account and returns a session token for it.
// Fails with ErrUserExists when the email is already registered.
func (s *AccountService) Signup(email, password string) (*models.AuthResponse, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           time.Now().UnixMilli(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	slog.Info("user created", "email", email)
	return &models.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login authenticates the credentials and returns a fresh session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AccountService) Login(email, password string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user.Public()}, nil
}
