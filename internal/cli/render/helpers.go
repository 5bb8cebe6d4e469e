package render

import (
	"strings"

	"github.com/fatih/color"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// field prints an aligned "  Label: value" line
func field(label, value string) string {
	return "  " + labelStyle.Sprintf("%-16s", label+":") + " " + value
}
