package core

// messages.go maps technical errors to operator-friendly guidance. Patterns
// are matched case-insensitively with strings.Contains; the first match
// wins, so more specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides operator-friendly error information with an
// actionable next step.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
}

// errorPattern pairs a substring of a technical error with its message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "missing required columns",
		msg: UserMessage{
			Message: "The file is missing required columns",
			Action:  "Compare the header row with the downloadable template",
		},
	},
	{
		pattern: "no valid rows",
		msg: UserMessage{
			Message: "No usable rows were found in the file",
			Action:  "Check that every row fills in all required fields",
		},
	},
	{
		pattern: "no label pages",
		msg: UserMessage{
			Message: "No labels were produced",
			Action:  "Check the QTD_ETIQUETAS column: values below 1 skip the row",
		},
	},
	{
		pattern: "cannot encode",
		msg: UserMessage{
			Message: "A barcode value could not be encoded",
			Action:  "EAN must be 12-13 digits with a valid check digit; fix the row and rerun",
		},
	},
	{
		pattern: "generating label for",
		msg: UserMessage{
			Message: "A row failed during label generation, so the PDF was not saved",
			Action:  "Fix the named row, or rerun with partial output allowed",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The file is empty",
			Action:  "Upload a semicolon-delimited file with a header row",
		},
	},
	{
		pattern: "dependency",
		msg: UserMessage{
			Message: "A required component failed to start, generation is disabled",
			Action:  "Check the log for the failing component and restart",
		},
	},
	{
		pattern: "saving document",
		msg: UserMessage{
			Message: "The finished PDF could not be written",
			Action:  "Check that the output directory exists and is writable",
		},
	},
}

// defaultMessage is the fallback when no pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for details and try again",
}

// MapError converts a technical error to an operator-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display:
// "Message. Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s. %s", msg.Message, msg.Action)
}
