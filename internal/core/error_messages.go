// Package core provides discriminator dispatch shared by the demo programs.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes so that a
// failed run can be described in one line on the console.
//
// # Selection Errors (SEL001-SEL099)
//
//	SEL001 - Unsupported selection: The value entered is not one of the choices
//	         Action: Choose one of the listed values
//	         Match: errors.Is(err, ErrUnsupportedSelection)
//
// # Input Errors (IN001-IN099)
//
//	IN001 - Read failure: The console input could not be read
//	        Action: Run the program again from an interactive terminal
//	        Patterns: "read input"
//
//	IN002 - Prompt failure: The prompt could not be written
//	        Action: Check that standard output is writable
//	        Patterns: "write prompt"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again
//
// Patterns are matched case-insensitively using strings.Contains. The first
// matching pattern wins.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for reference
}

// String renders the message on a single line.
func (m UserMessage) String() string {
	if m.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", m.Message, m.Code, m.Action)
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
var errorPatterns = []errorPattern{
	{
		pattern: "read input",
		msg: UserMessage{
			Message: "The console input could not be read",
			Action:  "Run the program again from an interactive terminal",
			Code:    "IN001",
		},
	},
	{
		pattern: "write prompt",
		msg: UserMessage{
			Message: "The prompt could not be written",
			Action:  "Check that standard output is writable",
			Code:    "IN002",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Unsupported selections are recognised by type and name the offending
// value and the accepted choices. Other errors are matched against known
// patterns; ERR000 is returned when nothing matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var sel *UnsupportedSelectionError
	if errors.As(err, &sel) {
		return UserMessage{
			Message: fmt.Sprintf("Unsupported %s %q", sel.Kind, sel.Value),
			Action:  "Choose one of: " + sel.Choices(),
			Code:    "SEL001",
		}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	return MapError(err).String()
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
