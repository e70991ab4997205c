// Package redact strips credentials and other sensitive fragments from
// strings before they reach the logs. Error text from the identity provider
// or the database may embed bearer tokens, connection strings, or SQL; none
// of that may appear even in server-side logs, let alone responses.
package redact

import "regexp"

// Redaction placeholders.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
)

var (
	// Database connection strings with inline credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// JWT-shaped tokens: three base64url segments starting with "eyJ".
	jwtRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Bearer credentials quoted back by HTTP clients.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)

	// API keys and secrets in key=value or key: value form.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|apikey|secret|password|passwd)(['"\s:=]+)[^'"&\s]{4,}`,
	)

	// SQL fragments leaked from driver errors.
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\w,*()='"$]+\s(FROM|INTO|SET|WHERE)\b[^;]*`,
	)

	// Email addresses.
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String returns s with all recognized sensitive fragments replaced by
// placeholders.
func String(s string) string {
	s = dbConnRegex.ReplaceAllString(s, CredentialPlaceholder+"@")
	s = jwtRegex.ReplaceAllString(s, TokenPlaceholder)
	s = bearerRegex.ReplaceAllString(s, TokenPlaceholder)
	s = apiKeyRegex.ReplaceAllString(s, "$1$2"+CredentialPlaceholder)
	s = sqlRegex.ReplaceAllString(s, SQLPlaceholder)
	s = emailRegex.ReplaceAllString(s, EmailPlaceholder)
	return s
}

// Error redacts an error's message. Returns the empty string for nil errors.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
