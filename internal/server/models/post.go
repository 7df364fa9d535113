package models

import "time"

// Post is an article. UserID references its author by id only.
type Post struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PostPatch carries a partial update; nil fields are left untouched.
type PostPatch struct {
	Title   *string
	Content *string
	UserID  *string
}

// Apply copies the set fields of p onto post.
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.UserID != nil {
		post.UserID = *p.UserID
	}
}
