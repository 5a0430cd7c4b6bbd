package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/arkesh-choudhury/task-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users map[string]dom.User

	created    dom.User
	createErr  error
	createHash string
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	u, ok := s.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (s *stubUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	if s.createErr != nil {
		return dom.User{}, s.createErr
	}
	s.createHash = passwordHash
	s.created = dom.User{ID: "user123", Username: username, PasswordHash: passwordHash}
	return s.created, nil
}

func TestUserServiceRegister(t *testing.T) {
	t.Run("hashes the password before it reaches the store", func(t *testing.T) {
		repo := &stubUserRepo{}
		svc := NewUserService(repo)

		u, err := svc.Register(context.Background(), "testuser", "password123")
		require.NoError(t, err)
		assert.Equal(t, "user123", u.ID)
		assert.NotEqual(t, "password123", repo.createHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.createHash), []byte("password123")))
	})

	t.Run("empty username or password rejected before the store", func(t *testing.T) {
		svc := NewUserService(&stubUserRepo{createErr: errors.New("should not be called")})

		_, err := svc.Register(context.Background(), "", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Register(context.Background(), "testuser", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("store errors pass through", func(t *testing.T) {
		storeErr := errors.New("db down")
		svc := NewUserService(&stubUserRepo{createErr: storeErr})

		_, err := svc.Register(context.Background(), "testuser", "password123")
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestUserServiceValidateCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[string]dom.User{
		"testuser": {ID: "user123", Username: "testuser", PasswordHash: string(hash)},
	}}
	svc := NewUserService(repo)
	ctx := context.Background()

	t.Run("valid credentials return the user", func(t *testing.T) {
		u, err := svc.ValidateCredentials(ctx, "testuser", "password123")
		require.NoError(t, err)
		assert.Equal(t, "user123", u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.ValidateCredentials(ctx, "testuser", "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.ValidateCredentials(ctx, "nobody", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := svc.ValidateCredentials(ctx, "", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.ValidateCredentials(ctx, "testuser", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
