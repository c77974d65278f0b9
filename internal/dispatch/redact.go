package dispatch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rakeshutekar/github-mcp/internal/registry"
)

// Call arguments may carry file contents or secrets, so redaction before
// logging is a hard requirement, not cosmetic. Redaction is applied to a
// copy; the arguments handed to the handler are untouched.
const (
	redactedMarker  = "[REDACTED]"
	maxLoggedString = 200
)

var sensitiveFields = []string{
	"token",
	"password",
	"secret",
	"passphrase",
	"authorization",
	"credential",
	"api_key",
	"apikey",
	"private_key",
}

func isSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range sensitiveFields {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// sanitizeArgs renders the argument mapping as JSON with credential-like
// fields replaced by a fixed marker and long strings replaced by a length
// indicator.
func sanitizeArgs(args registry.Args) string {
	data, err := json.Marshal(sanitizeMap(map[string]any(args)))
	if err != nil {
		return fmt.Sprintf("<%d args, unserializable>", len(args))
	}
	return string(data)
}

func sanitizeMap(m map[string]any) map[string]any {
	clean := make(map[string]any, len(m))
	for name, value := range m {
		clean[name] = sanitizeValue(name, value)
	}
	return clean
}

func sanitizeValue(name string, value any) any {
	if isSensitiveField(name) {
		return redactedMarker
	}
	switch v := value.(type) {
	case string:
		if len(v) > maxLoggedString {
			return fmt.Sprintf("<string: %d chars>", len(v))
		}
		return v
	case map[string]any:
		return sanitizeMap(v)
	case []any:
		clean := make([]any, len(v))
		for i, el := range v {
			clean[i] = sanitizeValue(name, el)
		}
		return clean
	}
	return value
}
