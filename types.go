package metawall

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Logger is the minimal structured logging surface the package depends on.
// Arguments are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Users is the account side of the document store. Password hashes and
// verification tokens never travel with default reads; the WithSecrets
// variants select them explicitly. Lookups return (nil, nil) when no record
// matches so callers can raise their own not-found failure.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailWithSecrets(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch UserPatch) (*User, error)
	ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// Posts is the wall side of the document store.
type Posts interface {
	List(ctx context.Context, query PostQuery) ([]*Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	Create(ctx context.Context, post *Post) (*Post, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch PostPatch) (*Post, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*Post, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	Users() Users
	Posts() Posts
}

type defLogger struct{}

func (d defLogger) Error(msg string, args ...any) { d.print("ERR", msg, args) }
func (d defLogger) Warn(msg string, args ...any)  { d.print("WRN", msg, args) }
func (d defLogger) Info(msg string, args ...any)  { d.print("INF", msg, args) }
func (d defLogger) Debug(msg string, args ...any) { d.print("DBG", msg, args) }

func (d defLogger) print(level, msg string, args []any) {
	if len(args) == 0 {
		fmt.Printf("[%s] METAWALL %s\n", level, msg)
		return
	}
	fmt.Printf("[%s] METAWALL %s %v\n", level, msg, args)
}
