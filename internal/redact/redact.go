// Package redact strips credentials and other sensitive values from strings
// before they are logged or returned in error responses. Database URLs,
// passwords, signing secrets, bearer tokens and bcrypt digests are replaced
// with fixed placeholders.
package redact

import (
	"net/url"
	"regexp"
)

// Placeholders substituted for redacted values.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedHashPlaceholder       = "[REDACTED_HASH]"
)

type rule struct {
	re          *regexp.Regexp
	replacement string
}

// rules are applied in order. Replacements may reference capture groups.
var rules = []rule{
	// userinfo in database URLs; the scheme and host stay readable
	{
		re:          regexp.MustCompile(`(?i)\b(postgres(?:ql)?|pgx)://[^@\s/]+@`),
		replacement: "${1}://" + RedactedCredentialPlaceholder + "@",
	},
	{
		re:          regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		replacement: RedactedJWTPlaceholder,
	},
	{
		re:          regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`),
		replacement: RedactedHashPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(password|passwd|pwd)(\s*[=:]\s*)['"]?[^'"&\s,}]+`),
		replacement: "${1}${2}" + RedactedCredentialPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(jwt_secret|secret|api[_-]?key|token)(\s*[=:]\s*)['"]?[^'"&\s,}]+`),
		replacement: "${1}${2}" + RedactedKeyPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		replacement: "[STACK_TRACE_REDACTED]",
	},
	{
		re:          regexp.MustCompile(`(/[\w.-]+){2,}`),
		replacement: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.re.ReplaceAllString(result, r.replacement)
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

// DatabaseURL returns raw with any password masked, suitable for logging
// which database the service connects to. Unparseable input is fully redacted.
func DatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return RedactionPlaceholder
	}
	return u.Redacted()
}
