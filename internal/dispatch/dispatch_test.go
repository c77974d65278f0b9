package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rakeshutekar/github-mcp/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDispatcher(t *testing.T, descriptors ...registry.Descriptor) (*Dispatcher, *int) {
	t.Helper()

	calls := 0
	counted := make([]registry.Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		inner := d.Handler
		d.Handler = func(ctx context.Context, args registry.Args) (any, error) {
			calls++
			return inner(ctx, args)
		}
		counted = append(counted, d)
	}

	reg, err := registry.New(counted)
	require.NoError(t, err)
	return New("session-test", reg), &calls
}

func echoDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "echo",
		Description: "echoes its name argument",
		Params: []registry.Param{
			{Name: "name", Type: "string", Required: true},
			{Name: "suffix", Type: "string"},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return map[string]any{"name": args.String("name") + args.String("suffix")}, nil
		},
	}
}

func TestInvoke_UnknownOperation(t *testing.T) {
	d, calls := testDispatcher(t, echoDescriptor())

	outcome := d.Invoke(context.Background(), "nonexistent_op", registry.Args{})

	require.True(t, outcome.Failed())
	assert.Equal(t, FailureUnknownOperation, outcome.Failure.Kind)
	assert.Contains(t, outcome.Failure.Message, "nonexistent_op")
	assert.Equal(t, "Unknown tool: nonexistent_op", outcome.Failure.Message)
	assert.Zero(t, *calls, "no handler may run for an unknown operation")
}

func TestInvoke_MissingRequired(t *testing.T) {
	d, calls := testDispatcher(t, echoDescriptor())

	outcome := d.Invoke(context.Background(), "echo", registry.Args{"suffix": "!"})

	require.True(t, outcome.Failed())
	assert.Equal(t, FailureInvalidArguments, outcome.Failure.Kind)
	assert.Contains(t, outcome.Failure.Message, "name")
	assert.Zero(t, *calls, "handler must not run on a malformed call")
}

func TestInvoke_HandlerError(t *testing.T) {
	failing := registry.Descriptor{
		Name: "always_fails",
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return nil, errors.New("GitHub API error (403): rate limit exceeded")
		},
	}
	d, _ := testDispatcher(t, failing)

	outcome := d.Invoke(context.Background(), "always_fails", registry.Args{})

	require.True(t, outcome.Failed())
	assert.Equal(t, FailureUpstream, outcome.Failure.Kind)
	assert.Equal(t, "GitHub API error (403): rate limit exceeded", outcome.Failure.Message)
}

func TestInvoke_HandlerPanic(t *testing.T) {
	panicking := registry.Descriptor{
		Name: "panics",
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			panic("boom")
		},
	}
	d, _ := testDispatcher(t, panicking)

	outcome := d.Invoke(context.Background(), "panics", registry.Args{})

	require.True(t, outcome.Failed())
	assert.Equal(t, FailureUpstream, outcome.Failure.Kind)
	assert.Contains(t, outcome.Failure.Message, "boom")
}

func TestInvoke_Success(t *testing.T) {
	d, calls := testDispatcher(t, echoDescriptor())

	outcome := d.Invoke(context.Background(), "echo", registry.Args{"name": "octocat"})

	require.False(t, outcome.Failed())
	assert.Equal(t, map[string]any{"name": "octocat"}, outcome.Payload)
	assert.Equal(t, 1, *calls)
}

func TestResultPreview(t *testing.T) {
	assert.Equal(t, "<no content>", resultPreview(nil))
	assert.Equal(t, `{"a":1}`, resultPreview(json.RawMessage(`{"a":1}`)))

	long := make([]byte, maxResultPreview*2)
	for i := range long {
		long[i] = 'x'
	}
	preview := resultPreview(json.RawMessage(long))
	assert.Len(t, preview, maxResultPreview+len("...(truncated)"))
	assert.Contains(t, preview, "(truncated)")
}
