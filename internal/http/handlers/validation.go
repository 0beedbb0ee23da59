package handlers

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	otpRe  = regexp.MustCompile(`^[0-9]{6}$`)
)

const (
	minAge = 13
	maxAge = 120
)

// normalizeEmail folds case and whitespace; email is the natural lookup
// key so every handler must normalize before calling the workflow.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 50 {
		return fmt.Errorf("name must be between 2 and 50 characters")
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("name can only contain letters and spaces")
	}
	return nil
}

func validateDateOfBirth(raw string) (time.Time, error) {
	dob, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("please enter a valid date")
	}

	age := time.Now().Year() - dob.Year()
	if age < minAge {
		return time.Time{}, fmt.Errorf("you must be at least %d years old", minAge)
	}
	if age > maxAge {
		return time.Time{}, fmt.Errorf("please enter a valid date of birth")
	}

	return dob, nil
}

func validateOTPCode(code string) error {
	if !otpRe.MatchString(strings.TrimSpace(code)) {
		return fmt.Errorf("otp must be 6 digits")
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) < 1 || len(title) > 100 {
		return fmt.Errorf("title must be between 1 and 100 characters")
	}
	return nil
}
