package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mrtrack/internal/domain"
	"mrtrack/internal/logging"
	"mrtrack/internal/port"
)

const (
	tempPasswordLength = 8
	// tempPasswordAlphabet leaves out characters that are easy to misread.
	tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

// Credentials are the login details issued by a password reset.
type Credentials struct {
	FieldRepID string `json:"field_rep_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Emailed    bool   `json:"emailed"`
}

// PasswordResetService issues temporary passwords for field rep logins.
type PasswordResetService interface {
	ResetFieldRepPassword(ctx context.Context, actor Actor, fieldRepID string) (*Credentials, error)
}

type passwordResetService struct {
	repos    Repositories
	notifier port.Notifier
}

// NewPasswordResetService creates a new PasswordResetService.
func NewPasswordResetService(repos Repositories, notifier port.Notifier) PasswordResetService {
	return &passwordResetService{
		repos:    repos,
		notifier: notifier,
	}
}

// ResetFieldRepPassword replaces the rep's password with a random one and
// returns it once. A rep without a login gets one provisioned. The rep is
// emailed the new credentials when they have an address; delivery failures
// are logged and reported through Emailed.
func (s *passwordResetService) ResetFieldRepPassword(ctx context.Context, actor Actor, fieldRepID string) (*Credentials, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	rep, err := s.repos.FieldReps.GetByID(ctx, fieldRepID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFieldRepNotFound
		}
		return nil, fmt.Errorf("passwordReset.ResetFieldRepPassword: %w", err)
	}

	password, err := generateTempPassword()
	if err != nil {
		return nil, fmt.Errorf("passwordReset.ResetFieldRepPassword: %w", err)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("passwordReset.ResetFieldRepPassword: %w", err)
	}

	user, err := s.repos.Users.GetByFieldRepID(ctx, rep.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		user = &domain.User{
			ID:           uuid.New().String(),
			Username:     rep.Username,
			PasswordHash: hash,
			FullName:     rep.Name,
			Role:         domain.RoleMR,
			FieldRepID:   rep.ID,
			IsActive:     rep.IsActive(),
		}
		if err := s.repos.Users.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicateUsername) {
				return nil, err
			}
			return nil, fmt.Errorf("passwordReset.ResetFieldRepPassword: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("passwordReset.ResetFieldRepPassword: %w", err)
	default:
		if err := s.repos.Users.SetPassword(ctx, user.ID, hash); err != nil {
			return nil, fmt.Errorf("passwordReset.ResetFieldRepPassword: %w", err)
		}
	}

	logging.Get().WithFields(logrus.Fields{
		"field_rep_id": rep.ID,
		"username":     user.Username,
		"reset_by":     actor.Username,
	}).Info("field rep password reset")

	creds := &Credentials{FieldRepID: rep.ID, Username: user.Username, Password: password}
	if rep.Email != "" {
		notice := port.PasswordResetNotice{
			ToEmail:  rep.Email,
			ToName:   rep.Name,
			Username: user.Username,
			Password: password,
		}
		if err := s.notifier.SendPasswordReset(ctx, notice); err != nil {
			logging.LogError(logging.Get(), "password_reset", "notify", logrus.Fields{"field_rep_id": rep.ID, "to": rep.Email}, err)
		} else {
			creds.Emailed = true
		}
	}
	return creds, nil
}

func generateTempPassword() (string, error) {
	limit := big.NewInt(int64(len(tempPasswordAlphabet)))
	out := make([]byte, tempPasswordLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}
