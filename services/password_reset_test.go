package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"staffhub/internal/resetflow"
	"staffhub/models"
)

type fakeMailer struct {
	sent     []string // codes in send order
	failNext bool
}

func (m *fakeMailer) SendPasswordResetOTP(email, code string) error {
	if m.failNext {
		m.failNext = false
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, code)
	return nil
}

type fakeDirectory struct {
	users    map[string]*models.User
	updated  map[string]string // email -> hash
	failNext bool
}

func newFakeDirectory(emails ...string) *fakeDirectory {
	users := make(map[string]*models.User)
	for _, email := range emails {
		users[email] = &models.User{Email: email, Roles: []string{models.RoleEmployee}}
	}
	return &fakeDirectory{users: users, updated: make(map[string]string)}
}

func (d *fakeDirectory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := d.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return user, nil
}

func (d *fakeDirectory) UpdatePassword(_ context.Context, email, hash string) error {
	if d.failNext {
		d.failNext = false
		return errors.New("write failed")
	}
	d.updated[email] = hash
	return nil
}

func newTestService(emails ...string) (*PasswordResetService, *resetflow.MemoryStore, *fakeMailer, *fakeDirectory) {
	store := resetflow.NewMemoryStore()
	mailer := &fakeMailer{}
	directory := newFakeDirectory(emails...)
	svc := NewPasswordResetService(store, mailer, directory)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC) }
	return svc, store, mailer, directory
}

const testEmail = "ravi.kumar@dataqinc.com"

func TestRequestOTPAdvancesOnlyOnSuccess(t *testing.T) {
	svc, _, mailer, _ := newTestService(testEmail)
	ctx := context.Background()

	session, err := svc.RequestOTP(ctx, testEmail)
	if err != nil {
		t.Fatalf("RequestOTP failed: %v", err)
	}
	if session.Step != resetflow.StepOTPEntry {
		t.Errorf("Expected step %d after send, got %d", resetflow.StepOTPEntry, session.Step)
	}
	if session.AttemptsLeft != resetflow.MaxAttempts {
		t.Errorf("Expected %d attempts, got %d", resetflow.MaxAttempts, session.AttemptsLeft)
	}
	if len(mailer.sent) != 1 || len(mailer.sent[0]) != 6 {
		t.Errorf("Expected one 6-digit code to be sent, got %v", mailer.sent)
	}
	if want := session.IssuedAt.Add(5 * time.Minute); !session.ExpiresAt.Equal(want) {
		t.Errorf("Expected expiry 5 minutes after issue, got %v", session.ExpiresAt)
	}
}

func TestRequestOTPSendFailureHoldsState(t *testing.T) {
	svc, _, mailer, _ := newTestService(testEmail)
	mailer.failNext = true
	ctx := context.Background()

	if _, err := svc.RequestOTP(ctx, testEmail); err == nil {
		t.Fatal("Expected error when the OTP email fails to send")
	}

	step, _, err := svc.Status(ctx, testEmail)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if step != resetflow.StepEmailEntry {
		t.Errorf("Expected flow to stay at email entry, got step %d", step)
	}
}

func TestRequestOTPRejectsInvalidAndUnknownEmail(t *testing.T) {
	svc, _, mailer, _ := newTestService(testEmail)
	ctx := context.Background()

	if _, err := svc.RequestOTP(ctx, "Ravi.Kumar@dataqinc.com"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for uppercase email, got %v", err)
	}
	if _, err := svc.RequestOTP(ctx, "nobody@dataqinc.com"); !errors.Is(err, ErrUnknownEmail) {
		t.Errorf("Expected unknown email error, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("Expected no emails sent, got %d", len(mailer.sent))
	}
}

func TestVerifyOTPWrongCodeDecrements(t *testing.T) {
	svc, _, mailer, _ := newTestService(testEmail)
	ctx := context.Background()

	if _, err := svc.RequestOTP(ctx, testEmail); err != nil {
		t.Fatalf("RequestOTP failed: %v", err)
	}

	attempts, err := svc.VerifyOTP(ctx, testEmail, "000000")
	if mailer.sent[0] == "000000" {
		t.Skip("generated code collided with the deliberately wrong guess")
	}
	if !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("Expected invalid OTP error, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts left, got %d", attempts)
	}

	// State holds at OTP entry
	step, _, _ := svc.Status(ctx, testEmail)
	if step != resetflow.StepOTPEntry {
		t.Errorf("Expected flow to hold at OTP entry, got step %d", step)
	}
}

func TestVerifyOTPExhaustionRestartsFlow(t *testing.T) {
	svc, _, mailer, _ := newTestService(testEmail)
	ctx := context.Background()

	if _, err := svc.RequestOTP(ctx, testEmail); err != nil {
		t.Fatalf("RequestOTP failed: %v", err)
	}
	if mailer.sent[0] == "999999" {
		t.Skip("generated code collided with the deliberately wrong guess")
	}

	var lastErr error
	for i := 0; i < resetflow.MaxAttempts; i++ {
		_, lastErr = svc.VerifyOTP(ctx, testEmail, "999999")
	}
	if !errors.Is(lastErr, ErrAttemptsExhausted) {
		t.Fatalf("Expected exhaustion on the third wrong code, got %v", lastErr)
	}

	step, _, _ := svc.Status(ctx, testEmail)
	if step != resetflow.StepEmailEntry {
		t.Errorf("Expected flow reset after exhaustion, got step %d", step)
	}
}

func TestVerifyOTPCorrectCodeAdvances(t *testing.T) {
	svc, _, mailer, _ := newTestService(testEmail)
	ctx := context.Background()

	if _, err := svc.RequestOTP(ctx, testEmail); err != nil {
		t.Fatalf("RequestOTP failed: %v", err)
	}
	if _, err := svc.VerifyOTP(ctx, testEmail, mailer.sent[0]); err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}

	step, _, _ := svc.Status(ctx, testEmail)
	if step != resetflow.StepPasswordReset {
		t.Errorf("Expected password reset step, got %d", step)
	}
}

func TestVerifyOTPIgnoresAdvisoryExpiry(t *testing.T) {
	svc, store, mailer, _ := newTestService(testEmail)
	ctx := context.Background()

	if _, err := svc.RequestOTP(ctx, testEmail); err != nil {
		t.Fatalf("RequestOTP failed: %v", err)
	}

	// Age the session far past the advertised 5-minute code lifetime.
	session, _ := store.Get(ctx, testEmail)
	session.IssuedAt = session.IssuedAt.Add(-1 * time.Hour)
	session.ExpiresAt = session.ExpiresAt.Add(-1 * time.Hour)
	store.Save(ctx, session)

	if _, err := svc.VerifyOTP(ctx, testEmail, mailer.sent[0]); err != nil {
		t.Errorf("Expected expiry to be display-only, got %v", err)
	}
}

func TestUpdatePasswordCompletesAndClears(t *testing.T) {
	svc, _, mailer, directory := newTestService(testEmail)
	ctx := context.Background()

	svc.RequestOTP(ctx, testEmail)
	svc.VerifyOTP(ctx, testEmail, mailer.sent[0])

	if err := svc.UpdatePassword(ctx, testEmail, "NewPass1!", "NewPass1!"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}
	if directory.updated[testEmail] == "" {
		t.Error("Expected the stored password hash to be updated")
	}

	// Flow returns to the start with all state cleared
	step, session, _ := svc.Status(ctx, testEmail)
	if step != resetflow.StepEmailEntry || session != nil {
		t.Errorf("Expected cleared flow at email entry, got step %d", step)
	}
}

func TestUpdatePasswordValidation(t *testing.T) {
	svc, _, mailer, directory := newTestService(testEmail)
	ctx := context.Background()

	svc.RequestOTP(ctx, testEmail)
	svc.VerifyOTP(ctx, testEmail, mailer.sent[0])

	if err := svc.UpdatePassword(ctx, testEmail, "weak", "weak"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for weak password, got %v", err)
	}
	if err := svc.UpdatePassword(ctx, testEmail, "NewPass1!", "Different1!"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for mismatch, got %v", err)
	}
	if len(directory.updated) != 0 {
		t.Error("Expected no password writes on validation failure")
	}

	// Flow holds at the reset step
	step, _, _ := svc.Status(ctx, testEmail)
	if step != resetflow.StepPasswordReset {
		t.Errorf("Expected flow to hold at password reset, got step %d", step)
	}
}

func TestUpdatePasswordRequiresReachedStep(t *testing.T) {
	svc, _, _, _ := newTestService(testEmail)
	ctx := context.Background()

	if err := svc.UpdatePassword(ctx, testEmail, "NewPass1!", "NewPass1!"); !errors.Is(err, ErrNoActiveFlow) {
		t.Errorf("Expected no-active-flow error, got %v", err)
	}

	svc.RequestOTP(ctx, testEmail)
	if err := svc.UpdatePassword(ctx, testEmail, "NewPass1!", "NewPass1!"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Expected wrong-step error before OTP verification, got %v", err)
	}
}

func TestBackStepsWithoutSideEffects(t *testing.T) {
	svc, _, mailer, _ := newTestService(testEmail)
	ctx := context.Background()

	svc.RequestOTP(ctx, testEmail)
	svc.VerifyOTP(ctx, testEmail, mailer.sent[0])
	sendsBefore := len(mailer.sent)

	step, err := svc.Back(ctx, testEmail)
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if step != resetflow.StepOTPEntry {
		t.Errorf("Expected step 2 after one back, got %d", step)
	}

	step, _ = svc.Back(ctx, testEmail)
	if step != resetflow.StepEmailEntry {
		t.Errorf("Expected step 1 after second back, got %d", step)
	}

	// Back at step 1 means a fresh flow: session gone
	_, session, _ := svc.Status(ctx, testEmail)
	if session != nil {
		t.Error("Expected session cleared after backing to the start")
	}
	if len(mailer.sent) != sendsBefore {
		t.Error("Expected no external calls from Back")
	}
}

func TestMutualExclusionPerFlow(t *testing.T) {
	svc, store, _, _ := newTestService(testEmail)
	ctx := context.Background()

	// Simulate another request holding the in-flight marker
	if ok, _ := store.TryBegin(ctx, testEmail); !ok {
		t.Fatal("Expected to acquire the in-flight marker")
	}
	if _, err := svc.RequestOTP(ctx, testEmail); !errors.Is(err, ErrRequestInFlight) {
		t.Errorf("Expected in-flight rejection, got %v", err)
	}
	store.End(ctx, testEmail)

	// Marker released: the flow proceeds
	if _, err := svc.RequestOTP(ctx, testEmail); err != nil {
		t.Errorf("Expected request to succeed after release, got %v", err)
	}
}
