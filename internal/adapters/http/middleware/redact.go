package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// sensitiveHeaders is the set of header names (lowercase) redacted before
// logging. The publish token travels as a bearer Authorization header.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// RedactHeaders converts request headers into slog attributes sorted by
// name. Sensitive headers are replaced with "[REDACTED]"; multi-value
// headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		if sensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}
