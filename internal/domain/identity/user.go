package identity

import "context"

// User represents a stored credential pair. Usernames are unique across
// all users.
//
// Passwords are stored and compared verbatim, exactly as supplied by the
// client, for compatibility with the existing client application.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"type:text;not null;unique"`
	Password string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user credential record
func NewUser(username, password string) *User {
	return &User{
		Username: username,
		Password: password,
	}
}

// UserRepository defines the interface for credential persistence
type UserRepository interface {
	// Create inserts a new user and assigns its generated ID
	Create(ctx context.Context, user *User) error

	// FindByUsername finds a user by exact username match.
	// Returns shared.ErrNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByCredentials finds a user matching both username and password
	// exactly. Returns shared.ErrNotFound when no row matches; callers must
	// not be able to tell an unknown username from a wrong password.
	FindByCredentials(ctx context.Context, username, password string) (*User, error)
}
