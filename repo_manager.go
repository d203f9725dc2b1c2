package metawall

import (
	"context"

	"github.com/uptrace/bun"
)

type mngr struct {
	db    *bun.DB
	users Users
	posts Posts
}

var _ RepositoryManager = (*mngr)(nil)

// NewRepositoryManager wires the Bun-backed repositories.
func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:    db,
		users: NewUsersRepository(db),
		posts: NewPostsRepository(db),
	}
}

func (m *mngr) Users() Users {
	return m.users
}

func (m *mngr) Posts() Posts {
	return m.posts
}

// CreateSchema creates the backing tables when they do not exist yet. Order
// matters: posts reference users.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*User)(nil),
		(*Post)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
