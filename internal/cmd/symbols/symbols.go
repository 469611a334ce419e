// Package symbols provides status symbols for CLI output.
package symbols

// Symbol constants give commands a consistent visual language.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Stop marks a shutdown in progress.
	Stop = "✗"

	// Warning marks a non-critical issue.
	Warning = "!"

	// Info marks informational messages.
	Info = "i"

	// Default marks the default vendor of a family.
	Default = "*"
)
