package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authkit-backend/internal/apperror"
	"authkit-backend/internal/auth/domain"
	"authkit-backend/internal/auth/repository"
	userdto "authkit-backend/internal/user/dto"
	"authkit-backend/pkg/hash"
	"authkit-backend/pkg/paging"
)

type memoryUserRepo struct {
	users map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) GetAllAndCount(ctx context.Context, args paging.Args) ([]*domain.User, int64, error) {
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	total := int64(len(users))
	if args.Skip >= total {
		return []*domain.User{}, total, nil
	}
	end := args.Skip + args.Limit
	if end > total {
		end = total
	}
	return users[args.Skip:end], total, nil
}

func (r *memoryUserRepo) Update(ctx context.Context, id string, update repository.UserUpdate) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.IsEmailVerified != nil {
		user.IsEmailVerified = *update.IsEmailVerified
	}
	user.UpdatedAt = time.Now()
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	user, ok := r.users[id]
	if !ok {
		return apperror.NotFound("User not found", map[string]any{"id": id})
	}
	user.Password = hashedPassword
	return nil
}

func (r *memoryUserRepo) Delete(ctx context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	delete(r.users, id)
	return user, nil
}

func seedUser(t *testing.T, repo *memoryUserRepo, hasher *hash.Service, email, password string) *domain.User {
	t.Helper()

	hashed, err := hasher.Hash(password)
	require.NoError(t, err)

	user := &domain.User{
		Email:     email,
		Username:  email,
		Password:  hashed,
		FirstName: "Test",
		Role:      domain.RoleUser,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGetByID(t *testing.T) {
	repo := newMemoryUserRepo()
	hasher := hash.NewService(bcrypt.MinCost)
	uc := NewUserUsecase(repo, hasher)
	ctx := context.Background()

	seeded := seedUser(t, repo, hasher, "alice@example.com", "password123")

	user, err := uc.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = uc.GetByID(ctx, "missing")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestUpdate(t *testing.T) {
	repo := newMemoryUserRepo()
	hasher := hash.NewService(bcrypt.MinCost)
	uc := NewUserUsecase(repo, hasher)
	ctx := context.Background()

	seeded := seedUser(t, repo, hasher, "alice@example.com", "password123")

	updated, err := uc.Update(ctx, seeded.ID, &userdto.UpdateUserRequest{FirstName: "Alicia", LastName: "Jones"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Jones", updated.LastName)

	// Empty last name leaves the stored value untouched.
	updated, err = uc.Update(ctx, seeded.ID, &userdto.UpdateUserRequest{FirstName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Jones", updated.LastName)

	_, err = uc.Update(ctx, "missing", &userdto.UpdateUserRequest{FirstName: "Nobody"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestChangePassword(t *testing.T) {
	repo := newMemoryUserRepo()
	hasher := hash.NewService(bcrypt.MinCost)
	uc := NewUserUsecase(repo, hasher)
	ctx := context.Background()

	seeded := seedUser(t, repo, hasher, "alice@example.com", "password123")

	_, err := uc.ChangePassword(ctx, seeded.ID, "wrong-old", "newPassword456")
	require.Error(t, err)
	assert.Equal(t, "Old password does not match", apperror.From(err).Message)

	ok, err := uc.ChangePassword(ctx, seeded.ID, "password123", "newPassword456")
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.True(t, hasher.Compare("newPassword456", stored.Password))

	_, err = uc.ChangePassword(ctx, "missing", "password123", "newPassword456")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestDelete(t *testing.T) {
	repo := newMemoryUserRepo()
	hasher := hash.NewService(bcrypt.MinCost)
	uc := NewUserUsecase(repo, hasher)
	ctx := context.Background()

	seeded := seedUser(t, repo, hasher, "alice@example.com", "password123")

	deleted, err := uc.Delete(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, deleted.ID)

	_, err = uc.Delete(ctx, seeded.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestGetAllPaging(t *testing.T) {
	repo := newMemoryUserRepo()
	hasher := hash.NewService(bcrypt.MinCost)
	uc := NewUserUsecase(repo, hasher)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		seedUser(t, repo, hasher, uuid.NewString()+"@example.com", "password123")
	}

	resp, err := uc.GetAll(ctx, "1", "10", "")
	require.NoError(t, err)
	assert.Equal(t, int64(15), resp.Paging.Total)
	assert.Equal(t, int64(2), resp.Paging.TotalPages)
	assert.True(t, resp.Paging.HasNextPage)
	assert.Len(t, resp.Results, 10)

	resp, err = uc.GetAll(ctx, "2", "10", "")
	require.NoError(t, err)
	assert.False(t, resp.Paging.HasNextPage)
	assert.Len(t, resp.Results, 5)
}
