package metawall_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	metawall "github.com/kelvin80121/metawall"
)

// MockUsers implements metawall.Users for testing
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) FindByEmail(ctx context.Context, email string) (*metawall.User, error) {
	args := m.Called(ctx, email)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUsers) FindByEmailWithSecrets(ctx context.Context, email string) (*metawall.User, error) {
	args := m.Called(ctx, email)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUsers) FindByID(ctx context.Context, id uuid.UUID) (*metawall.User, error) {
	args := m.Called(ctx, id)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUsers) Create(ctx context.Context, user *metawall.User) (*metawall.User, error) {
	args := m.Called(ctx, user)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUsers) UpdateByID(ctx context.Context, id uuid.UUID, patch metawall.UserPatch) (*metawall.User, error) {
	args := m.Called(ctx, id, patch)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUsers) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func userArg(v any) *metawall.User {
	if v == nil {
		return nil
	}
	return v.(*metawall.User)
}

// MockPosts implements metawall.Posts for testing
type MockPosts struct {
	mock.Mock
}

func (m *MockPosts) List(ctx context.Context, query metawall.PostQuery) ([]*metawall.Post, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*metawall.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPosts) FindByID(ctx context.Context, id uuid.UUID) (*metawall.Post, error) {
	args := m.Called(ctx, id)
	return postArg(args.Get(0)), args.Error(1)
}

func (m *MockPosts) Create(ctx context.Context, post *metawall.Post) (*metawall.Post, error) {
	args := m.Called(ctx, post)
	return postArg(args.Get(0)), args.Error(1)
}

func (m *MockPosts) UpdateByID(ctx context.Context, id uuid.UUID, patch metawall.PostPatch) (*metawall.Post, error) {
	args := m.Called(ctx, id, patch)
	return postArg(args.Get(0)), args.Error(1)
}

func (m *MockPosts) DeleteByID(ctx context.Context, id uuid.UUID) (*metawall.Post, error) {
	args := m.Called(ctx, id)
	return postArg(args.Get(0)), args.Error(1)
}

func (m *MockPosts) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func postArg(v any) *metawall.Post {
	if v == nil {
		return nil
	}
	return v.(*metawall.Post)
}

// stubRepo aggregates the mocks behind the RepositoryManager contract.
type stubRepo struct {
	users metawall.Users
	posts metawall.Posts
}

func (r *stubRepo) Users() metawall.Users { return r.users }
func (r *stubRepo) Posts() metawall.Posts { return r.posts }
