package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

type User struct {
	ID           string
	Email        string
	Fullname     string
	PasswordHash string
	IsConfirmed  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
