package metawall

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UserSex is the declared-set user attribute
type UserSex = string

const (
	SexMale   UserSex = "male"
	SexFemale UserSex = "female"
)

// PostType is the declared-set post category
type PostType = string

const (
	// PostTypeFan is a fan-page post
	PostTypeFan PostType = "fan"
	// PostTypeGroup is a group post
	PostTypeGroup PostType = "group"
)

// User is the account model. PasswordHash and VerificationToken are excluded
// from default reads; repositories select them only through the WithSecrets
// variants, and neither field is ever serialized to a response.
type User struct {
	bun.BaseModel     `bun:"table:users,alias:usr"`
	ID                uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name              string     `bun:"name,notnull" json:"name,omitempty"`
	Email             string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash      string     `bun:"password_hash" json:"-"`
	Photo             string     `bun:"photo" json:"photo,omitempty"`
	Sex               UserSex    `bun:"sex" json:"sex,omitempty"`
	VerificationToken string     `bun:"verification_token" json:"-"`
	CreatedAt         *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt         *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Identity returns the opaque subject identifier tokens assert.
func (u *User) Identity() string {
	return u.ID.String()
}

// UserPatch is a partial account update. Nil fields are left untouched; the
// credential is never updated through a patch, password replacement happens
// wholesale via ResetPassword.
type UserPatch struct {
	Name  *string
	Photo *string
	Sex   *string
}

// IsEmpty reports whether the patch would touch any column.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Photo == nil && p.Sex == nil
}

// Post is the wall post model. The User relation joins the author's public
// attributes for list and detail reads.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:pst"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Image         string     `bun:"image" json:"image,omitempty"`
	Content       string     `bun:"content,notnull" json:"content"`
	Likes         int        `bun:"likes" json:"likes"`
	Comments      int        `bun:"comments" json:"comments"`
	Type          PostType   `bun:"type,notnull" json:"type"`
	Tags          []string   `bun:"tags" json:"tags,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id"`
	User          *User      `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// PostPatch is a partial post update; nil fields are left untouched.
type PostPatch struct {
	Image   *string
	Content *string
	Type    *string
	Tags    *[]string
}

// IsEmpty reports whether the patch would touch any column.
func (p PostPatch) IsEmpty() bool {
	return p.Image == nil && p.Content == nil && p.Type == nil && p.Tags == nil
}

// SortOrder is the createdAt ordering for post listings.
type SortOrder = string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PostQuery captures the supported listing refinements: pagination, keyword
// substring filtering on content, and creation-time ordering.
type PostQuery struct {
	Page    int
	Limit   int
	Sort    SortOrder
	Keyword string
}

// Normalize clamps the query to usable defaults.
func (q PostQuery) Normalize() PostQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Sort != SortAsc {
		q.Sort = SortDesc
	}
	return q
}
