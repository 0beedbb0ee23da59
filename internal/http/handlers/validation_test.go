package handlers

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Ann@X.com", "ann@x.com"},
		{"  ann@x.com  ", "ann@x.com"},
		{"ANN@X.COM", "ann@x.com"},
		{"ann@x.com", "ann@x.com"},
	}

	for _, tt := range tests {
		if got := normalizeEmail(tt.input); got != tt.expected {
			t.Errorf("normalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"plain name", "Ann Example", false},
		{"minimum length", "Al", false},
		{"maximum length", strings.Repeat("a", 50), false},
		{"single character", "A", true},
		{"too long", strings.Repeat("a", 51), true},
		{"digits", "Ann2", true},
		{"punctuation", "Ann-Marie", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateName(tt.input)
			if tt.expectErr && err == nil {
				t.Errorf("expected error for %q, got nil", tt.input)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.input, err)
			}
		})
	}
}

func TestValidateDateOfBirth(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"adult", "1990-06-15", false},
		{"exactly thirteen", now.AddDate(-13, 0, -1).Format("2006-01-02"), false},
		{"too young", now.AddDate(-12, 0, 0).Format("2006-01-02"), true},
		{"implausibly old", "1850-01-01", true},
		{"wrong format", "15/06/1990", true},
		{"not a date", "yesterday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob, err := validateDateOfBirth(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error for %q, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error for %q: %v", tt.input, err)
				return
			}
			if dob.IsZero() {
				t.Errorf("expected parsed date for %q, got zero value", tt.input)
			}
		})
	}
}

func TestValidateOTPCode(t *testing.T) {
	tests := []struct {
		input     string
		expectErr bool
	}{
		{"123456", false},
		{"000000", false},
		{"12345", true},
		{"1234567", true},
		{"12345a", true},
		{"", true},
		{" 123456", false},
		{"12 3456", true},
	}

	for _, tt := range tests {
		err := validateOTPCode(tt.input)
		if tt.expectErr && err == nil {
			t.Errorf("expected error for %q, got nil", tt.input)
		}
		if !tt.expectErr && err != nil {
			t.Errorf("unexpected error for %q: %v", tt.input, err)
		}
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"plain title", "Buy milk", false},
		{"single character", "a", false},
		{"maximum length", strings.Repeat("x", 100), false},
		{"surrounding whitespace counts after trim", "  " + strings.Repeat("x", 100) + "  ", false},
		{"too long", strings.Repeat("x", 101), true},
		{"whitespace only", "   ", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTitle(tt.input)
			if tt.expectErr && err == nil {
				t.Errorf("expected error for %q, got nil", tt.input)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.input, err)
			}
		})
	}
}
