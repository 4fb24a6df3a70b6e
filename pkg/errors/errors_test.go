package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDate, "test message: %s", "value")

	if err.Code != ErrCodeInvalidDate {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDate)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_DATE: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeStore, cause, "failed to load")

	if err.Code != ErrCodeStore {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStore)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDayLocked, "test"),
			code:     ErrCodeDayLocked,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(ErrCodeDayLocked, "test"),
			code:     ErrCodeNotToday,
			expected: false,
		},
		{
			name:     "wrapped matching code",
			err:      Wrap(ErrCodeStore, errors.New("io"), "test"),
			code:     ErrCodeStore,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(New(ErrCodeUnchanged, "x")); code != ErrCodeUnchanged {
		t.Errorf("GetCode() = %v, want %v", code, ErrCodeUnchanged)
	}
	if code := GetCode(errors.New("plain")); code != "" {
		t.Errorf("GetCode(plain) = %v, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeDayLocked, "today already has an entry")
	if msg := UserMessage(err); msg != "today already has an entry" {
		t.Errorf("UserMessage() = %q", msg)
	}
	plain := errors.New("plain failure")
	if msg := UserMessage(plain); msg != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", msg)
	}
}
