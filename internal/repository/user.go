package repository

import (
	"context"

	"github.com/channelry/accounts/internal/domain"
)

type UserRepository interface {
	// Create inserts the user atomically; a duplicate email surfaces as
	// domain.ErrEmailTaken from the store's unique constraint.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Confirm flips is_confirmed for the user with the given email.
	Confirm(ctx context.Context, email string) error
}
