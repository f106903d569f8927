package models

import "time"

// Role is the access tier gating route access.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleCustomer
}

// User is the identity behind the single active console session. Exactly one
// user may be logged in at a time; the record round-trips through the session
// storage on login, update and restore.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	LineUserID   string    `json:"lineUserId,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}
