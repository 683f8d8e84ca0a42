package entity

import "time"

// Authorization roles. Any registered account is RoleUser; the admin surface
// requires RoleAdmin, granted at registration to configured bootstrap emails.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
// JSON tags define the on-disk record layout of the users collection.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the password-stripped view returned by the API.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the account view with the password hash stripped.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// UserSummary is the minimal owner/reporter reference embedded in joins.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Summary returns the minimal reference used when joining records.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
