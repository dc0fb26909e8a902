package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/auth"
)

type memRepository struct {
	users        map[string]*User
	lastLoginErr error
}

func newMemRepository() *memRepository {
	return &memRepository{users: make(map[string]*User)}
}

func (r *memRepository) find(match func(*User) bool) (*User, error) {
	for _, u := range r.users {
		if match(u) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.find(func(u *User) bool { return u.Email == email })
}

func (r *memRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.find(func(u *User) bool { return u.Username == username })
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return r.find(func(u *User) bool { return u.ID == id })
}

func (r *memRepository) Create(ctx context.Context, u *User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *memRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	if r.lastLoginErr != nil {
		return r.lastLoginErr
	}
	r.users[id].LastLoginAt = &t
	return nil
}

func newTestService() (Service, *memRepository) {
	repo := newMemRepository()
	return NewService(repo, auth.NewBcryptPasswordHasher(bcrypt.MinCost), zap.NewNop()), repo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Register: Success", func(t *testing.T) {
		svc, repo := newTestService()

		u, err := svc.Register(ctx, " alice ", " Alice@Example.com ", "password123")
		require.NoError(t, err)

		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.True(t, u.IsActive)
		assert.False(t, u.IsStaff)
		assert.NotEqual(t, "password123", repo.users[u.ID].PasswordHash)
	})

	t.Run("Register: Duplicate Username", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alice", "other@example.com", "password123")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("Register: Duplicate Email", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "bob", "ALICE@example.com", "password123")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("Register: Validation Failure", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.Register(ctx, "bad name", "a@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidUsername)

		_, err = svc.Register(ctx, strings.Repeat("a", 151), "a@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidUsername)

		_, err = svc.Register(ctx, "alice", "  ", "password123")
		assert.ErrorIs(t, err, ErrEmailRequired)

		_, err = svc.Register(ctx, "alice", "a@example.com", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)

		assert.Empty(t, repo.users)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	registered, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("Login: By Username", func(t *testing.T) {
		u, err := svc.Login(ctx, "alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
		require.NotNil(t, u.LastLoginAt)
		assert.NotNil(t, repo.users[u.ID].LastLoginAt)
	})

	t.Run("Login: By Email Ignores Case", func(t *testing.T) {
		u, err := svc.Login(ctx, "ALICE@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("Login: Wrong Password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Login: Unknown User", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Login: Inactive User", func(t *testing.T) {
		svc, repo := newTestService()
		u, err := svc.Register(ctx, "carol", "carol@example.com", "password123")
		require.NoError(t, err)
		repo.users[u.ID].IsActive = false

		_, err = svc.Login(ctx, "carol", "password123")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})

	t.Run("Login: Last Login Failure Is Not Fatal", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Register(ctx, "dave", "dave@example.com", "password123")
		require.NoError(t, err)
		repo.lastLoginErr = errors.New("db down")

		u, err := svc.Login(ctx, "dave", "password123")
		require.NoError(t, err)
		assert.Nil(t, u.LastLoginAt)
	})
}
