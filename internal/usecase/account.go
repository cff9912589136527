package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/channelry/accounts/internal/domain"
	"github.com/channelry/accounts/internal/email"
	"github.com/channelry/accounts/internal/metrics"
	"github.com/channelry/accounts/internal/password"
	"github.com/channelry/accounts/internal/repository"
	"github.com/channelry/accounts/internal/token"
	"github.com/golang-jwt/jwt/v5"
)

const defaultJWTTTL = 24 * time.Hour

type AccountUsecase struct {
	users      repository.UserRepository
	email      email.Sender
	confirmer  *token.Confirmer
	jwtKey     []byte
	jwtTTL     time.Duration
	appBaseURL string
}

func NewAccountUsecase(users repository.UserRepository, emailSender email.Sender, confirmer *token.Confirmer, jwtKey []byte, appBaseURL string) *AccountUsecase {
	return &AccountUsecase{
		users:      users,
		email:      emailSender,
		confirmer:  confirmer,
		jwtKey:     jwtKey,
		jwtTTL:     defaultJWTTTL,
		appBaseURL: appBaseURL,
	}
}

type SignupInput struct {
	Email    string
	Fullname string
	Password string
}

// Signup hashes the password, inserts the user (unconfirmed) and emails a
// signed confirmation link. The insert is atomic: a concurrent signup for
// the same email loses on the unique constraint and surfaces ErrEmailTaken.
func (u *AccountUsecase) Signup(ctx context.Context, input SignupInput) error {
	hash, err := password.Hash(input.Password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Email:        input.Email,
		Fullname:     input.Fullname,
		PasswordHash: hash,
	}
	if _, err = u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			return err
		}
		return fmt.Errorf("create user: %w", err)
	}
	metrics.SignupsTotal.WithLabelValues("created").Inc()

	confirmationToken, err := u.confirmer.Generate(input.Email)
	if err != nil {
		return err
	}

	body, err := email.RenderConfirmation(u.appBaseURL + "/email/" + confirmationToken)
	if err != nil {
		return err
	}

	to := fmt.Sprintf("%s <%s>", input.Fullname, input.Email)
	start := time.Now()
	err = u.email.Send(ctx, to, email.SubjectConfirm, body)
	metrics.EmailSendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed bearer token bound to
// the user's email identity. An unknown email and a wrong password both
// yield ErrInvalidCredentials so callers cannot probe for account existence.
func (u *AccountUsecase) Login(ctx context.Context, emailAddr, plainPassword string) (string, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err = password.Verify(user.PasswordHash, plainPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.jwtTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return signed, nil
}

// ConfirmEmail verifies the signed token and flips the user's confirmation
// flag. Returns alreadyConfirmed=true when the flag was flipped by an
// earlier request; repeating the request never changes state again.
//
// A valid token for a missing user is reported as token.ErrTokenInvalid:
// tokens are only minted at signup and users are never deleted, so the
// caller learns nothing from the distinction.
func (u *AccountUsecase) ConfirmEmail(ctx context.Context, rawToken string) (alreadyConfirmed bool, err error) {
	emailAddr, err := u.confirmer.Confirm(rawToken)
	if err != nil {
		metrics.ConfirmationsTotal.WithLabelValues("invalid").Inc()
		return false, err
	}

	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.ConfirmationsTotal.WithLabelValues("invalid").Inc()
			return false, token.ErrTokenInvalid
		}
		return false, fmt.Errorf("find user: %w", err)
	}

	if user.IsConfirmed {
		metrics.ConfirmationsTotal.WithLabelValues("repeat").Inc()
		return true, nil
	}

	if err = u.users.Confirm(ctx, emailAddr); err != nil {
		return false, fmt.Errorf("confirm user: %w", err)
	}
	metrics.ConfirmationsTotal.WithLabelValues("confirmed").Inc()
	return false, nil
}

// Account returns the account behind an authenticated user ID.
func (u *AccountUsecase) Account(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
