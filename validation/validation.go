package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Field validators return an error message, or "" when the value is valid.
// They never touch the network or the database, so controllers can run them
// before spending a round trip.

const CompanyDomain = "dataqinc.com"

var (
	companyEmailRegex  = regexp.MustCompile(`^[a-z0-9._%+-]+@` + `dataqinc\.com$`)
	personalEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	letterRegex        = regexp.MustCompile(`[A-Za-z]`)
	digitRegex         = regexp.MustCompile(`[0-9]`)
	specialRegex       = regexp.MustCompile(`[@$!%*?&]`)
	nonDigitRegex      = regexp.MustCompile(`\D`)
)

// DateLayout is the wire format for all date-only fields.
const DateLayout = "2006-01-02"

// ValidateRequired checks that a value is non-empty after trimming.
func ValidateRequired(value string) string {
	if strings.TrimSpace(value) == "" {
		return "This field is required"
	}
	return ""
}

// ValidateCompanyEmail accepts only lowercase addresses on the company domain.
// Any uppercase letter anywhere in the address is rejected outright, even when
// the domain is correct.
func ValidateCompanyEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if strings.ContainsFunc(email, unicode.IsUpper) {
		return "Email must be in lowercase"
	}
	if !companyEmailRegex.MatchString(email) {
		return "Email must be a valid " + CompanyDomain + " address"
	}
	return ""
}

// ValidatePersonalEmail accepts any syntactically valid user@domain.tld address.
func ValidatePersonalEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if !personalEmailRegex.MatchString(email) {
		return "Enter a valid email address"
	}
	return ""
}

// ValidatePassword enforces minimum length and character classes: at least one
// letter, one digit, and one of @$!%*?&.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	if !letterRegex.MatchString(password) {
		return "Password must contain at least one letter"
	}
	if !digitRegex.MatchString(password) {
		return "Password must contain at least one digit"
	}
	if !specialRegex.MatchString(password) {
		return "Password must contain at least one special character (@$!%*?&)"
	}
	return ""
}

// ValidateConfirmPassword requires byte-for-byte equality with the original.
func ValidateConfirmPassword(password, confirm string) string {
	if confirm == "" {
		return "Confirm password is required"
	}
	if confirm != password {
		return "Passwords do not match"
	}
	return ""
}

// ValidatePhone requires exactly 10 digits after stripping separators.
func ValidatePhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "Phone number is required"
	}
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) != 10 {
		return "Phone number must be exactly 10 digits"
	}
	return ""
}

// ValidateDateOfBirth requires a past date and a calendar-aware age of at
// least 20 years.
func ValidateDateOfBirth(value string) string {
	return ValidateDateOfBirthAt(value, time.Now())
}

func ValidateDateOfBirthAt(value string, now time.Time) string {
	if strings.TrimSpace(value) == "" {
		return "Date of birth is required"
	}
	dob, err := time.Parse(DateLayout, value)
	if err != nil {
		return "Enter a valid date (YYYY-MM-DD)"
	}
	if dob.After(now) {
		return "Date of birth cannot be in the future"
	}
	if ageAt(dob, now) < 20 {
		return "Employee must be at least 20 years old"
	}
	return ""
}

// ValidateJoiningDate requires the joining date to fall strictly after the
// date of birth and inside the inclusive window [today-1 month, today+1 month].
func ValidateJoiningDate(value, dateOfBirth string) string {
	return ValidateJoiningDateAt(value, dateOfBirth, time.Now())
}

func ValidateJoiningDateAt(value, dateOfBirth string, now time.Time) string {
	if strings.TrimSpace(value) == "" {
		return "Joining date is required"
	}
	joining, err := time.Parse(DateLayout, value)
	if err != nil {
		return "Enter a valid date (YYYY-MM-DD)"
	}
	if dob, dobErr := time.Parse(DateLayout, dateOfBirth); dobErr == nil {
		if !joining.After(dob) {
			return "Joining date must be after date of birth"
		}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := today.AddDate(0, -1, 0)
	windowEnd := today.AddDate(0, 1, 0)
	if joining.Before(windowStart) || joining.After(windowEnd) {
		return "Joining date must be within one month of today"
	}
	return ""
}

// ValidateOTP checks the shape of a one-time code; the actual match is decided
// by the reset flow.
func ValidateOTP(code string) string {
	if strings.TrimSpace(code) == "" {
		return "OTP is required"
	}
	if len(code) != 6 {
		return "OTP must be 6 digits"
	}
	return ""
}

// ageAt computes full calendar years between dob and now, accounting for
// whether the birthday has occurred yet this year.
func ageAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
