package validation

import (
	"testing"
	"time"
)

func TestValidateCompanyEmail(t *testing.T) {
	if msg := ValidateCompanyEmail("ravi.kumar@dataqinc.com"); msg != "" {
		t.Errorf("Expected valid company email, got error: %s", msg)
	}
	if msg := ValidateCompanyEmail("ravi@gmail.com"); msg == "" {
		t.Error("Expected error for non-company domain")
	}
	if msg := ValidateCompanyEmail(""); msg == "" {
		t.Error("Expected error for empty email")
	}
}

func TestValidateCompanyEmailRejectsUppercase(t *testing.T) {
	// Uppercase anywhere loses, even with the right domain
	cases := []string{
		"Ravi.kumar@dataqinc.com",
		"ravi.KUMAR@dataqinc.com",
		"ravi@DATAQINC.com",
		"Ravi@gmail.com",
	}
	for _, email := range cases {
		if msg := ValidateCompanyEmail(email); msg == "" {
			t.Errorf("Expected uppercase rejection for %q", email)
		}
	}
}

func TestValidatePersonalEmail(t *testing.T) {
	if msg := ValidatePersonalEmail("Someone.Else@example.co.in"); msg != "" {
		t.Errorf("Expected valid personal email, got error: %s", msg)
	}
	if msg := ValidatePersonalEmail("not-an-email"); msg == "" {
		t.Error("Expected error for malformed address")
	}
	if msg := ValidatePersonalEmail("user@domain"); msg == "" {
		t.Error("Expected error for missing TLD")
	}
}

func TestValidatePassword(t *testing.T) {
	if msg := ValidatePassword("Passw0rd!"); msg != "" {
		t.Errorf("Expected valid password, got error: %s", msg)
	}

	// Removing any one required class must fail
	cases := map[string]string{
		"short":      "Ab1!",
		"no letter":  "12345678!",
		"no digit":   "Password!",
		"no special": "Password1",
	}
	for name, password := range cases {
		if msg := ValidatePassword(password); msg == "" {
			t.Errorf("Expected error for %s password %q", name, password)
		}
	}
}

func TestValidateConfirmPassword(t *testing.T) {
	if msg := ValidateConfirmPassword("Passw0rd!", "Passw0rd!"); msg != "" {
		t.Errorf("Expected match, got error: %s", msg)
	}
	if msg := ValidateConfirmPassword("Passw0rd!", "Passw0rd?"); msg == "" {
		t.Error("Expected mismatch error")
	}
	if msg := ValidateConfirmPassword("Passw0rd!", ""); msg == "" {
		t.Error("Expected error for empty confirmation")
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"9876543210", "987-654-3210", "(987) 654 3210"}
	for _, phone := range valid {
		if msg := ValidatePhone(phone); msg != "" {
			t.Errorf("Expected %q to be valid, got error: %s", phone, msg)
		}
	}
	invalid := []string{"12345", "98765432101", ""}
	for _, phone := range invalid {
		if msg := ValidatePhone(phone); msg == "" {
			t.Errorf("Expected error for %q", phone)
		}
	}
}

func TestValidateDateOfBirth(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	if msg := ValidateDateOfBirthAt("2000-01-10", now); msg != "" {
		t.Errorf("Expected valid DOB, got error: %s", msg)
	}
	// Turns 20 the day after "now": still 19
	if msg := ValidateDateOfBirthAt("2006-08-16", now); msg == "" {
		t.Error("Expected under-age rejection just before the 20th birthday")
	}
	// 20th birthday exactly on "now"
	if msg := ValidateDateOfBirthAt("2006-08-15", now); msg != "" {
		t.Errorf("Expected 20th birthday to pass, got error: %s", msg)
	}
	if msg := ValidateDateOfBirthAt("2030-01-01", now); msg == "" {
		t.Error("Expected rejection of a future DOB")
	}
	if msg := ValidateDateOfBirthAt("15-08-2000", now); msg == "" {
		t.Error("Expected rejection of a malformed date")
	}
}

func TestValidateJoiningDate(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	if msg := ValidateJoiningDateAt("2026-08-20", "2000-01-10", now); msg != "" {
		t.Errorf("Expected valid joining date, got error: %s", msg)
	}
	// joining <= dob always fails
	if msg := ValidateJoiningDateAt("2000-01-10", "2000-01-10", now); msg == "" {
		t.Error("Expected rejection when joining equals DOB")
	}
	if msg := ValidateJoiningDateAt("1999-12-31", "2000-01-10", now); msg == "" {
		t.Error("Expected rejection when joining precedes DOB")
	}
	// Outside the one-month window
	if msg := ValidateJoiningDateAt("2026-06-01", "2000-01-10", now); msg == "" {
		t.Error("Expected rejection before the window")
	}
	if msg := ValidateJoiningDateAt("2026-10-01", "2000-01-10", now); msg == "" {
		t.Error("Expected rejection after the window")
	}
	// Window edges are inclusive
	if msg := ValidateJoiningDateAt("2026-07-15", "2000-01-10", now); msg != "" {
		t.Errorf("Expected window start to be inclusive, got error: %s", msg)
	}
	if msg := ValidateJoiningDateAt("2026-09-15", "2000-01-10", now); msg != "" {
		t.Errorf("Expected window end to be inclusive, got error: %s", msg)
	}
}

func TestFormValidateRecomputesAllFields(t *testing.T) {
	values := map[string]string{
		"password":        "Passw0rd!",
		"confirmPassword": "different",
	}
	errs := PasswordResetForm.Validate(values)
	if errs["password"] != "" {
		t.Errorf("Expected password to pass, got: %s", errs["password"])
	}
	if errs["confirmPassword"] == "" {
		t.Error("Expected confirmPassword mismatch error")
	}

	// Fixing the value clears the error on recompute
	values["confirmPassword"] = "Passw0rd!"
	errs = PasswordResetForm.Validate(values)
	if errs["confirmPassword"] != "" {
		t.Errorf("Expected confirmPassword to pass after fix, got: %s", errs["confirmPassword"])
	}
	if !PasswordResetForm.Valid(values) {
		t.Error("Expected form to be valid")
	}
}

func TestFormValidRequiresEveryField(t *testing.T) {
	values := map[string]string{
		"firstName":     "Ravi",
		"lastName":      "Kumar",
		"email":         "ravi.kumar@dataqinc.com",
		"personalEmail": "ravi@example.com",
		"phone":         "9876543210",
		"dateOfBirth":   "1995-03-04",
		// joiningDate missing
	}
	if EmployeeForm.Valid(values) {
		t.Error("Expected form with a missing field to be invalid")
	}
}
