package dispatch

import (
	"strings"
	"testing"

	"github.com/rakeshutekar/github-mcp/internal/registry"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeArgs_Credentials(t *testing.T) {
	out := sanitizeArgs(registry.Args{
		"owner":        "octocat",
		"token":        "ghp_supersecretvalue",
		"password":     "hunter2",
		"api_key":      "abc123",
		"github_token": "ghp_nested",
	})

	assert.NotContains(t, out, "ghp_supersecretvalue")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "abc123")
	assert.NotContains(t, out, "ghp_nested")
	assert.Contains(t, out, redactedMarker)
	assert.Contains(t, out, `"owner":"octocat"`)
}

func TestSanitizeArgs_LongContent(t *testing.T) {
	content := strings.Repeat("A", 300)
	out := sanitizeArgs(registry.Args{
		"content": content,
		"path":    "README.md",
	})

	assert.NotContains(t, out, content)
	assert.Contains(t, out, "<string: 300 chars>")
	assert.Contains(t, out, `"path":"README.md"`)
}

func TestSanitizeArgs_BoundaryLength(t *testing.T) {
	exact := strings.Repeat("B", maxLoggedString)
	out := sanitizeArgs(registry.Args{"body": exact})
	assert.Contains(t, out, exact, "strings at the limit pass through intact")
}

func TestSanitizeArgs_Nested(t *testing.T) {
	out := sanitizeArgs(registry.Args{
		"options": map[string]any{
			"secret": "tucked-away",
			"draft":  true,
		},
		"assignees": []any{"alice", "bob"},
	})

	assert.NotContains(t, out, "tucked-away")
	assert.Contains(t, out, redactedMarker)
	assert.Contains(t, out, `"draft":true`)
	assert.Contains(t, out, "alice")
}

func TestIsSensitiveField(t *testing.T) {
	for _, name := range []string{"token", "Token", "access_token", "GITHUB_TOKEN", "password", "client_secret", "api_key"} {
		assert.True(t, isSensitiveField(name), name)
	}
	for _, name := range []string{"owner", "repo", "body", "content", "sha"} {
		assert.False(t, isSensitiveField(name), name)
	}
}
