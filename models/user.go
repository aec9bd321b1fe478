package models

// User represents a stored account record.
//
// PasswordHash is serialized under the "password" key so that the listing
// and lookup endpoints keep returning the stored record as-is. Anything that
// leaves the service after signup, login or update must go through
// [User.Public] instead.
type User struct {
	// UserID is assigned by the store on creation and never changes.
	UserID int64 `json:"id"`

	// Username is unique across all records, compared case-sensitively.
	Username string `json:"username"`

	// PasswordHash is the self-describing Argon2id encoding of the password.
	// It is never empty once the record exists.
	PasswordHash string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public maps the record to its public view, dropping the password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
	}
}

// PublicUser is the view of a [User] that is safe to return to clients.
// It has no field able to carry credential material.
type PublicUser struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// UpdateUser is the input of an account update.
//
// Username and Password are optional: a nil value leaves the stored field
// untouched. Token is the signed token presented by the caller and must
// belong to the account identified by UserID.
type UpdateUser struct {
	UserID   int64
	Username *string
	Password *string
	Token    string
}

// RemoveUser is the input of an account removal. Token is only checked when
// ownership enforcement on removal is switched on.
type RemoveUser struct {
	UserID int64
	Token  string
}
