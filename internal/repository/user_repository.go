package repository

import (
	"errors"

	"movie-browse-server/internal/models"
	"movie-browse-server/internal/store"
)

// UsersStore is the record store name backing user accounts.
const UsersStore = "users"

// ErrDuplicateEmail is returned by Create when the email is already
// registered.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository persists user accounts in the flat users store.
type UserRepository struct {
	store *store.FileStore
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(s *store.FileStore) *UserRepository {
	return &UserRepository{store: s}
}

// GetByEmail returns the user with the given email, or nil if none exists.
// Comparison is case-sensitive, matching what signup stored.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var users []models.User
	if err := r.store.Load(UsersStore, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create appends the user to the store. The duplicate check runs inside the
// store's write lock so two concurrent signups cannot both claim an email.
func (r *UserRepository) Create(user models.User) error {
	var users []models.User
	return r.store.Update(UsersStore, &users, func() (any, error) {
		for _, existing := range users {
			if existing.Email == user.Email {
				return nil, ErrDuplicateEmail
			}
		}
		users = append(users, user)
		return users, nil
	})
}
