package security

import (
	"strings"
)

// Sensitive header names that should be redacted.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
	"x-auth-token":        true,
	"proxy-authorization": true,
}

// Sensitive query parameter names that should be redacted.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"key",
	"authorization",
	"api_key",
	"apikey",
	"access_token",
	"refresh_token",
	"credential",
	"clave",
}

const redactedValue = "[REDACTED]"

// SanitizeHeaders returns a copy of the headers with sensitive values redacted,
// safe to include in log output.
func SanitizeHeaders(headers map[string][]string) map[string]string {
	sanitized := make(map[string]string)

	for key, values := range headers {
		lowerKey := strings.ToLower(key)
		if sensitiveHeaders[lowerKey] {
			sanitized[key] = redactedValue
		} else {
			sanitized[key] = strings.Join(values, ", ")
		}
	}

	return sanitized
}

// SanitizeURL redacts sensitive query parameters from a URL.
func SanitizeURL(url string) string {
	lowerURL := strings.ToLower(url)

	for _, sensitiveField := range sensitiveFields {
		if strings.Contains(lowerURL, sensitiveField+"=") {
			url = redactQueryParam(url, sensitiveField)
		}
	}

	return url
}

// redactQueryParam redacts the value of a query parameter.
func redactQueryParam(url, param string) string {
	lowerURL := strings.ToLower(url)
	lowerParam := strings.ToLower(param)

	if idx := strings.Index(lowerURL, lowerParam+"="); idx != -1 {
		startIdx := idx + len(lowerParam) + 1
		endIdx := strings.IndexAny(url[startIdx:], "&")

		if endIdx == -1 {
			return url[:startIdx] + redactedValue
		}

		return url[:startIdx] + redactedValue + url[startIdx+endIdx:]
	}

	return url
}

// SanitizeFilename makes a string safe to use as a download filename.
// Path separators and control characters are replaced with a dash.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			b.WriteRune('-')
		case r < 0x20:
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
