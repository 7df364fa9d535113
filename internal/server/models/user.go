package models

import "time"

// User is a registered author. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID        string    `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Name is the display name derived from first and last name.
func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// Apply copies the set fields of p onto u.
func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}
