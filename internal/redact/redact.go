// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. This prevents the accidental leakage of
// bearer tokens, credentials, email addresses, file paths and SQL fragments
// that may be embedded in error messages.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
)

// Precompiled patterns, applied in order.
var rules = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	// Bearer tokens, including the static "<secret>:<userId>" scheme
	{regexp.MustCompile(`(?i)bearer\s+[^\s'"]+`), RedactedTokenPlaceholder},
	{regexp.MustCompile(`[A-Za-z0-9_-]{8,}:\d+`), RedactedTokenPlaceholder},

	// Password-ish key/value pairs and bcrypt digests
	{regexp.MustCompile(`(?i)(password|passwd|pwd|secret)([=:\s]['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{4,}`), RedactedCredentialPlaceholder},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},

	// File paths (the database file location is deployment-sensitive)
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},

	// SQL fragments
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE|INDEX)[\s\w,*()='"?]*`), RedactedSQLPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, rule := range rules {
		result = rule.pattern.ReplaceAllString(result, rule.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
