package errors

import (
	"strings"
	"unicode"
)

// maxEntryLength caps a single journal entry. Generous for a one-a-day
// thought but keeps stores and API payloads bounded.
const maxEntryLength = 4096

// ValidateEntryText validates journal entry text before submission.
// The empty string is deliberately allowed: an explicitly empty submission
// still locks the day.
func ValidateEntryText(text string) error {
	if len(text) > maxEntryLength {
		return New(ErrCodeInvalidInput, "entry too long (max %d bytes)", maxEntryLength)
	}

	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r' {
			return New(ErrCodeInvalidInput, "entry contains invalid control characters")
		}
	}

	return nil
}

// ValidateDateKeyFormat checks the YYYY-MM-DD shape without resolving the
// date. Full calendar validation lives in the journal package; this guard
// rejects obviously malformed input at API and CLI boundaries.
func ValidateDateKeyFormat(key string) error {
	if len(key) != 10 || key[4] != '-' || key[7] != '-' {
		return New(ErrCodeInvalidDate, "not a calendar day: %q (want YYYY-MM-DD)", key)
	}
	for i, r := range key {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidDate, "not a calendar day: %q (want YYYY-MM-DD)", key)
		}
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains a null byte")
	}
	if len(path) > 500 {
		return New(ErrCodeInvalidInput, "output path too long (max 500 characters)")
	}
	return nil
}
