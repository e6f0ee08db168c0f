package errors

import (
	"strings"
	"unicode"
)

// maxMessageLength caps card text so the terminal compositor stays sane.
const maxMessageLength = 1024

// ValidateCardMessage validates a card's display text.
//
// The validation rules are intentionally conservative:
//   - No empty messages
//   - No control characters other than newlines and tabs
//   - Maximum length of 1024 characters
func ValidateCardMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return New(ErrCodeInvalidCard, "card message cannot be empty")
	}

	if len(message) > maxMessageLength {
		return New(ErrCodeInvalidCard, "card message too long (max %d characters)", maxMessageLength)
	}

	for _, r := range message {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return New(ErrCodeInvalidCard, "card message contains invalid control characters")
		}
	}

	return nil
}

// ValidateDeckPath validates a deck file path for safety.
// It prevents null bytes and unreasonable path lengths; existence is
// checked separately when the file is opened.
func ValidateDeckPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidDeck, "deck path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidDeck, "deck path too long (max 500 characters)")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidDeck, "deck path contains null byte")
	}

	return nil
}
