package domain

import "time"

// Role is the coarse authorization level attached to an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User models a registered account on the platform.
//
// The struct is deliberately tag-free: the JSON contract is owned by the
// transport layer's response types and the BSON shape by the Mongo
// repository's document type, so neither can leak the password hash by
// accident.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	DisplayNSFW  bool
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
