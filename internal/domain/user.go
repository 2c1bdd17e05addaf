package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole es un rol del sistema.
type UserRole string

const (
	RoleUser    UserRole = "USER"
	RoleAdmin   UserRole = "ADMIN"
	RoleDealer  UserRole = "DEALER"
	RoleManager UserRole = "MANAGER"
)

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Roles        []UserRole `json:"roles"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID     string      `json:"id"`
	Name   *string     `json:"name"`
	Email  *string     `json:"email"`
	Roles  *[]UserRole `json:"roles"`
	Active *bool       `json:"active"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type Claims struct {
	UserID    string     `json:"user_id"`
	UserName  string     `json:"user_name"`
	UserEmail string     `json:"user_email"`
	UserRoles []UserRole `json:"user_roles"`
	jwt.RegisteredClaims
}

// HasRole indica si el usuario tiene el rol dado.
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

func (u *User) IsManager() bool {
	return u.HasRole(RoleManager)
}

func (u *User) IsDealer() bool {
	return u.HasRole(RoleDealer)
}

// HasRole indica si los claims incluyen el rol dado.
func (c *Claims) HasRole(role UserRole) bool {
	for _, r := range c.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}
