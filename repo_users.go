package metawall

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository returns the Bun-backed account repository.
func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

// secretColumns are opt-in: default reads never select them.
var secretColumns = []string{"password_hash", "verification_token"}

func (r *users) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, false, "usr.email = ?", email)
}

func (r *users) FindByEmailWithSecrets(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, true, "usr.email = ?", email)
}

func (r *users) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.findOne(ctx, false, "usr.id = ?", id)
}

func (r *users) findOne(ctx context.Context, withSecrets bool, where string, args ...any) (*User, error) {
	user := &User{}

	q := r.db.NewSelect().Model(user).Where(where, args...)
	if !withSecrets {
		q = q.ExcludeColumn(secretColumns...)
	}

	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "user lookup failed")
	}

	return user, nil
}

func (r *users) Create(ctx context.Context, user *User) (*User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryConflict, "could not create user")
	}

	created := *user
	created.PasswordHash = ""
	created.VerificationToken = ""
	return &created, nil
}

func (r *users) UpdateByID(ctx context.Context, id uuid.UUID, patch UserPatch) (*User, error) {
	if !patch.IsEmpty() {
		q := r.db.NewUpdate().Model((*User)(nil)).Where("id = ?", id)
		if patch.Name != nil {
			q = q.Set("name = ?", *patch.Name)
		}
		if patch.Photo != nil {
			q = q.Set("photo = ?", *patch.Photo)
		}
		if patch.Sex != nil {
			q = q.Set("sex = ?", *patch.Sex)
		}

		res, err := q.Set("updated_at = current_timestamp").Exec(ctx)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "user update failed")
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return nil, nil
		}
	}

	return r.FindByID(ctx, id)
}

// ResetPassword replaces the stored credential wholesale; the record is never
// partially mutated.
func (r *users) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := r.db.NewUpdate().
		Model((*User)(nil)).
		Set("password_hash = ?", passwordHash).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "password reset failed")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
