package metawall

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type posts struct {
	db *bun.DB
}

var _ Posts = (*posts)(nil)

// NewPostsRepository returns the Bun-backed post repository.
func NewPostsRepository(db *bun.DB) Posts {
	return &posts{db: db}
}

// authorColumns is the public slice of the author record joined onto post
// reads.
func authorColumns(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Column("id", "name", "email")
}

func (r *posts) List(ctx context.Context, query PostQuery) ([]*Post, error) {
	query = query.Normalize()

	records := make([]*Post, 0, query.Limit)

	q := r.db.NewSelect().
		Model(&records).
		Relation("User", authorColumns).
		Limit(query.Limit).
		Offset((query.Page - 1) * query.Limit)

	if query.Keyword != "" {
		q = q.Where("pst.content LIKE ?", "%"+query.Keyword+"%")
	}

	if query.Sort == SortAsc {
		q = q.Order("pst.created_at ASC")
	} else {
		q = q.Order("pst.created_at DESC")
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "post listing failed")
	}

	return records, nil
}

func (r *posts) FindByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	post := &Post{}

	err := r.db.NewSelect().
		Model(post).
		Relation("User", authorColumns).
		Where("pst.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "post lookup failed")
	}

	return post, nil
}

func (r *posts) Create(ctx context.Context, post *Post) (*Post, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	if _, err := r.db.NewInsert().Model(post).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not create post")
	}

	return post, nil
}

func (r *posts) UpdateByID(ctx context.Context, id uuid.UUID, patch PostPatch) (*Post, error) {
	post, err := r.FindByID(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return post, nil
	}

	var columns []string
	if patch.Image != nil {
		post.Image = *patch.Image
		columns = append(columns, "image")
	}
	if patch.Content != nil {
		post.Content = *patch.Content
		columns = append(columns, "content")
	}
	if patch.Type != nil {
		post.Type = *patch.Type
		columns = append(columns, "type")
	}
	if patch.Tags != nil {
		post.Tags = *patch.Tags
		columns = append(columns, "tags")
	}

	if _, err := r.db.NewUpdate().Model(post).Column(columns...).WherePK().Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "post update failed")
	}

	return r.FindByID(ctx, id)
}

func (r *posts) DeleteByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	post, err := r.FindByID(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}

	if _, err := r.db.NewDelete().Model((*Post)(nil)).Where("id = ?", id).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "post delete failed")
	}

	return post, nil
}

func (r *posts) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.NewDelete().Model((*Post)(nil)).Where("1 = 1").Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, errors.CategoryInternal, "bulk post delete failed")
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, errors.CategoryInternal, "bulk post delete failed")
	}

	return deleted, nil
}
