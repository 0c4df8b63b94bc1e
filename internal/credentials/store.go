// Package credentials owns secure password storage. Passwords are
// bcrypt-hashed on the way in and never read back out: the stored hash
// is one-way and this package exposes no reversal.
package credentials

import (
	"context"
	"fmt"

	"github.com/avelov/flightdesk/internal/domain"
	"github.com/avelov/flightdesk/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type Store interface {
	// CreateAccount hashes the password and persists the new user. The
	// plaintext is discarded; the returned user carries only the hash.
	CreateAccount(ctx context.Context, username, password, firstName, lastName string) (*domain.User, error)
}

type BcryptStore struct {
	users repository.UserRepository
	cost  int
}

func NewStore(users repository.UserRepository) *BcryptStore {
	return &BcryptStore{users: users, cost: bcrypt.DefaultCost}
}

func (s *BcryptStore) CreateAccount(ctx context.Context, username, password, firstName, lastName string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

var _ Store = (*BcryptStore)(nil)
