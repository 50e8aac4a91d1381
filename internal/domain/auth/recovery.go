package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/core"
	"hrms/internal/platform/crypto"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RecoveryAccounts is the account storage the recovery flows write through.
type RecoveryAccounts interface {
	FindAccountByEmail(ctx context.Context, kind core.AccountKind, email string) (*core.Account, error)
	FindAccountByResetToken(ctx context.Context, kind core.AccountKind, tokenHash string) (*core.Account, error)
	UpdateAccount(ctx context.Context, kind core.AccountKind, orgID, id string, apply func(*core.Account) error) (*core.Account, error)
}

type SessionRevoker interface {
	RevokeSubjectSessions(ctx context.Context, orgID, subjectID string, kind core.AccountKind) (int64, error)
}

// Recovery issues one-time tokens for password resets and email
// verification. Only their hashes are stored.
type Recovery struct {
	Accounts  RecoveryAccounts
	Sessions  SessionRevoker
	Mailer    Mailer
	ResetTTL  time.Duration
	VerifyTTL time.Duration
	Now       func() time.Time
}

func NewRecovery(accounts RecoveryAccounts, sessions SessionRevoker, mailer Mailer, resetTTL, verifyTTL time.Duration) *Recovery {
	return &Recovery{
		Accounts:  accounts,
		Sessions:  sessions,
		Mailer:    mailer,
		ResetTTL:  resetTTL,
		VerifyTTL: verifyTTL,
		Now:       time.Now,
	}
}

const (
	resetTokenBytes = 25
	verifyCodeBytes = 3
)

// ForgotPassword mails a reset token when the email belongs to an account.
// Unknown emails succeed silently.
func (r *Recovery) ForgotPassword(ctx context.Context, kind core.AccountKind, email string) error {
	if !kind.Valid() {
		return apperr.Invalid("kind", "must be employee or hr")
	}
	lookup := core.Account{Email: email}
	core.NormalizeAccount(&lookup)
	account, err := r.Accounts.FindAccountByEmail(ctx, kind, lookup.Email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token, err := crypto.RandomToken(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("reset token: %w", err)
	}
	expires := r.Now().Add(r.ResetTTL)
	if _, err := r.Accounts.UpdateAccount(ctx, kind, account.OrganizationID, account.ID, func(a *core.Account) error {
		a.ResetPasswordToken = crypto.HashToken(token)
		a.ResetPasswordExpires = &expires
		return nil
	}); err != nil {
		return err
	}

	body := fmt.Sprintf("Use this token to reset your password: %s\nIt expires at %s.", token, expires.UTC().Format(time.RFC3339))
	if err := r.Mailer.Send(ctx, account.Email, "Password reset", body); err != nil {
		slog.WarnContext(ctx, "reset email failed", "account_id", account.ID, "error", err)
	}
	return nil
}

// ResetPassword sets a new password for the holder of a live reset token and
// revokes the account's sessions.
func (r *Recovery) ResetPassword(ctx context.Context, kind core.AccountKind, token, password string) error {
	if !kind.Valid() {
		return apperr.Invalid("kind", "must be employee or hr")
	}
	if err := core.ValidatePassword(password); err != nil {
		return err
	}
	invalid := apperr.Invalid("token", "is invalid or expired")
	if token == "" {
		return invalid
	}
	account, err := r.Accounts.FindAccountByResetToken(ctx, kind, crypto.HashToken(token))
	if errors.Is(err, apperr.ErrNotFound) {
		return invalid
	}
	if err != nil {
		return err
	}
	if account.ResetPasswordExpires == nil || !r.Now().Before(*account.ResetPasswordExpires) {
		return invalid
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := r.Accounts.UpdateAccount(ctx, kind, account.OrganizationID, account.ID, func(a *core.Account) error {
		a.PasswordHash = hash
		a.ResetPasswordToken = ""
		a.ResetPasswordExpires = nil
		return nil
	}); err != nil {
		return err
	}
	_, err = r.Sessions.RevokeSubjectSessions(ctx, account.OrganizationID, account.ID, kind)
	return err
}

// RequestVerification mails a short code to the caller's address.
func (r *Recovery) RequestVerification(ctx context.Context, id Identity) error {
	code, err := crypto.RandomToken(verifyCodeBytes)
	if err != nil {
		return fmt.Errorf("verification code: %w", err)
	}
	expires := r.Now().Add(r.VerifyTTL)
	account, err := r.Accounts.UpdateAccount(ctx, id.Kind, id.OrganizationID, id.SubjectID, func(a *core.Account) error {
		if a.IsVerified {
			return fmt.Errorf("%w: email already verified", apperr.ErrConflict)
		}
		a.VerificationToken = crypto.HashToken(code)
		a.VerificationTokenExpires = &expires
		return nil
	})
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires at %s.", code, expires.UTC().Format(time.RFC3339))
	if err := r.Mailer.Send(ctx, account.Email, "Verify your email", body); err != nil {
		slog.WarnContext(ctx, "verification email failed", "account_id", account.ID, "error", err)
	}
	return nil
}

// VerifyEmail marks the caller verified when code matches a live code.
func (r *Recovery) VerifyEmail(ctx context.Context, id Identity, code string) (*core.Account, error) {
	return r.Accounts.UpdateAccount(ctx, id.Kind, id.OrganizationID, id.SubjectID, func(a *core.Account) error {
		if a.IsVerified {
			return fmt.Errorf("%w: email already verified", apperr.ErrConflict)
		}
		live := a.VerificationTokenExpires != nil && r.Now().Before(*a.VerificationTokenExpires)
		if code == "" || !live || a.VerificationToken != crypto.HashToken(code) {
			return apperr.Invalid("code", "is invalid or expired")
		}
		a.IsVerified = true
		a.VerificationToken = ""
		a.VerificationTokenExpires = nil
		return nil
	})
}
