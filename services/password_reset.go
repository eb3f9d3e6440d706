package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffhub/internal/resetflow"
	"staffhub/models"
	"staffhub/utils"
	"staffhub/validation"
)

// Password reset flow errors surfaced to the API layer.
var (
	ErrValidation        = errors.New("validation failed")
	ErrUnknownEmail      = errors.New("no account found for this email")
	ErrRequestInFlight   = errors.New("a request for this step is already in progress")
	ErrNoActiveFlow      = errors.New("no active reset flow for this email")
	ErrWrongStep         = errors.New("action not allowed at the current step")
	ErrInvalidOTP        = errors.New("incorrect OTP")
	ErrAttemptsExhausted = errors.New("OTP attempts exhausted")
)

// Mailer delivers the one-time code.
type Mailer interface {
	SendPasswordResetOTP(email, code string) error
}

// UserDirectory is the slice of the user store the flow needs.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// PasswordResetService drives the three-step reset wizard: email entry,
// OTP entry, new password. A step advances only after its side effect
// succeeds; failures leave the flow where it was.
type PasswordResetService struct {
	store  resetflow.Store
	mailer Mailer
	users  UserDirectory
	now    func() time.Time
}

func NewPasswordResetService(store resetflow.Store, mailer Mailer, users UserDirectory) *PasswordResetService {
	return &PasswordResetService{
		store:  store,
		mailer: mailer,
		users:  users,
		now:    time.Now,
	}
}

// Status reports the flow's current step. A missing session means the flow
// is (back) at email entry.
func (s *PasswordResetService) Status(ctx context.Context, email string) (resetflow.Step, *resetflow.Session, error) {
	session, err := s.store.Get(ctx, email)
	if errors.Is(err, resetflow.ErrNotFound) {
		return resetflow.StepEmailEntry, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}
	return session.Step, session, nil
}

// RequestOTP validates the address, emails a fresh 6-digit code and moves the
// flow to OTP entry. The state is written only after the email went out.
func (s *PasswordResetService) RequestOTP(ctx context.Context, email string) (*resetflow.Session, error) {
	if msg := validation.ValidateCompanyEmail(email); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrValidation, msg)
	}

	ok, err := s.store.TryBegin(ctx, email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRequestInFlight
	}
	defer s.store.End(ctx, email)

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, ErrUnknownEmail
	}

	code := utils.GenerateRandomCode(6)
	if err := s.mailer.SendPasswordResetOTP(email, code); err != nil {
		// Email never left: the flow stays at email entry.
		return nil, fmt.Errorf("failed to send OTP: %w", err)
	}

	session := resetflow.NewSession(email, code, s.now())
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// VerifyOTP checks the submitted code. A wrong code burns one of the three
// attempts and keeps the flow at OTP entry; the right code advances it.
// The advisory code expiry is deliberately not checked here.
func (s *PasswordResetService) VerifyOTP(ctx context.Context, email, code string) (int, error) {
	if msg := validation.ValidateOTP(code); msg != "" {
		return 0, fmt.Errorf("%w: %s", ErrValidation, msg)
	}

	ok, err := s.store.TryBegin(ctx, email)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrRequestInFlight
	}
	defer s.store.End(ctx, email)

	session, err := s.store.Get(ctx, email)
	if errors.Is(err, resetflow.ErrNotFound) {
		return 0, ErrNoActiveFlow
	}
	if err != nil {
		return 0, err
	}
	if session.Step != resetflow.StepOTPEntry {
		return 0, ErrWrongStep
	}

	if code != session.Code {
		session.AttemptsLeft--
		if session.AttemptsLeft <= 0 {
			// Flow restarts from scratch once attempts run out.
			if err := s.store.Delete(ctx, email); err != nil {
				return 0, err
			}
			return 0, ErrAttemptsExhausted
		}
		if err := s.store.Save(ctx, session); err != nil {
			return session.AttemptsLeft, err
		}
		return session.AttemptsLeft, ErrInvalidOTP
	}

	session.Step = resetflow.StepPasswordReset
	if err := s.store.Save(ctx, session); err != nil {
		return session.AttemptsLeft, err
	}
	return session.AttemptsLeft, nil
}

// UpdatePassword finishes the flow: the new password must pass the field
// rules and match its confirmation, and the store update must succeed before
// the session is cleared back to email entry.
func (s *PasswordResetService) UpdatePassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	errs := validation.PasswordResetForm.Validate(map[string]string{
		"password":        newPassword,
		"confirmPassword": confirmPassword,
	})
	for _, field := range []string{"password", "confirmPassword"} {
		if errs[field] != "" {
			return fmt.Errorf("%w: %s", ErrValidation, errs[field])
		}
	}

	ok, err := s.store.TryBegin(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRequestInFlight
	}
	defer s.store.End(ctx, email)

	session, err := s.store.Get(ctx, email)
	if errors.Is(err, resetflow.ErrNotFound) {
		return ErrNoActiveFlow
	}
	if err != nil {
		return err
	}
	if session.Step != resetflow.StepPasswordReset {
		return ErrWrongStep
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, email, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return s.store.Delete(ctx, email)
}

// Back steps the flow backwards without touching any external service.
// Stepping back from OTP entry (or anywhere past the start) to step 1
// discards the session entirely, restarting the flow.
func (s *PasswordResetService) Back(ctx context.Context, email string) (resetflow.Step, error) {
	session, err := s.store.Get(ctx, email)
	if errors.Is(err, resetflow.ErrNotFound) {
		return resetflow.StepEmailEntry, nil
	}
	if err != nil {
		return 0, err
	}

	session.Step--
	if session.Step <= resetflow.StepEmailEntry {
		if err := s.store.Delete(ctx, email); err != nil {
			return 0, err
		}
		return resetflow.StepEmailEntry, nil
	}
	if err := s.store.Save(ctx, session); err != nil {
		return 0, err
	}
	return session.Step, nil
}
