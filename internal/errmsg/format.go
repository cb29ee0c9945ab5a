// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad Op = "load config"
	OpKeymapLoad Op = "build bindings from config"
	OpExport     Op = "export bindings"

	// Profiles
	OpProfileLoad   Op = "load profile"
	OpProfileSave   Op = "save profile"
	OpProfileList   Op = "list profiles"
	OpProfileDelete Op = "delete profile"

	// Editing
	OpBind   Op = "bind button"
	OpParse  Op = "parse button"
	OpAction Op = "look up action"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
