package credentials

import (
	"context"
	"testing"

	"github.com/avelov/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestBcryptStore_CreateAccount(t *testing.T) {
	mockUsers := &MockUserRepository{}
	store := NewStore(mockUsers)

	ctx := context.Background()

	var persisted *domain.User
	mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*domain.User)
		persisted.ID = 11
	}).Return(nil)

	user, err := store.CreateAccount(ctx, "alice", "secret", "A", "L")

	assert.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "A", user.FirstName)
	assert.Equal(t, "L", user.LastName)

	// The plaintext never reaches the store; the persisted hash verifies
	// one-way against the original password.
	assert.NotEqual(t, "secret", persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("secret")))
	mockUsers.AssertExpectations(t)
}

func TestBcryptStore_CreateAccount_UsernameTaken(t *testing.T) {
	mockUsers := &MockUserRepository{}
	store := NewStore(mockUsers)

	ctx := context.Background()

	mockUsers.On("Create", ctx, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := store.CreateAccount(ctx, "alice", "secret", "A", "L")

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}
