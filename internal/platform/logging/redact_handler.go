package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists HTTP header names (lowercase) that carry
// credentials. The HTTP middleware consults this same set when logging
// request headers, keeping both layers' redaction in step.
var SensitiveHeaders = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"cookie":              {},
	"x-api-key":           {},
}

// secretPatterns catches secrets hiding in innocently named fields: bearer
// tokens, JWTs (segments of 10+ chars, sparing dotted version strings), and
// inline api_key=... fragments.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// secretFieldNames are non-header field names that always hold credentials.
var secretFieldNames = []string{"password", "secret", "token"}

// newRedactAttr builds the masq ReplaceAttr hook installed on every handler
// New creates. It scrubs by field name for the known sensitive fields and by
// value pattern for secrets that escape call-site discipline.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range secretFieldNames {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
	)
	for _, re := range secretPatterns {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
