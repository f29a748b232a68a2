package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	FullName       string     `json:"full_name,omitempty"`
	HashedPassword string     `json:"-"`
	IsActive       bool       `json:"is_active"`
	IsVerified     bool       `json:"is_verified"`
	Role           string     `json:"role"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func NewUser(email, username, fullName, hashedPassword string) *User {
	return &User{
		Email:          email,
		Username:       username,
		FullName:       fullName,
		HashedPassword: hashedPassword,
		IsActive:       true,
		Role:           RoleUser,
		CreatedAt:      time.Now().UTC(),
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
