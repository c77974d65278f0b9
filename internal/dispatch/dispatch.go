package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rakeshutekar/github-mcp/internal/registry"

	"github.com/zeromicro/go-zero/core/logx"
)

// FailureKind categorizes the failure branch of an Outcome.
type FailureKind string

const (
	// FailureUnknownOperation means the call named an operation absent from
	// the registry. No external collaborator was touched.
	FailureUnknownOperation FailureKind = "unknown_operation"

	// FailureInvalidArguments means the argument mapping is missing required
	// parameters. Checked before the handler runs, so handler-internal errors
	// stay distinguishable from malformed calls.
	FailureInvalidArguments FailureKind = "invalid_arguments"

	// FailureUpstream means the handler (or the upstream API behind it)
	// returned an error.
	FailureUpstream FailureKind = "upstream"
)

// Failure is the structured error branch of an Outcome.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Outcome is the result-or-failure sum produced for every invocation.
// Exactly one of Payload and Failure is meaningful.
type Outcome struct {
	Payload any
	Failure *Failure
}

// Failed reports whether the outcome carries the failure branch.
func (o Outcome) Failed() bool {
	return o.Failure != nil
}

func success(payload any) Outcome {
	return Outcome{Payload: payload}
}

func failure(kind FailureKind, format string, args ...any) Outcome {
	return Outcome{Failure: &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}

// Dispatcher routes call messages for one session to the operation catalog.
// Every Invoke produces exactly one Outcome; no error escapes this boundary.
type Dispatcher struct {
	sessionID string
	registry  *registry.Registry
}

// New binds a dispatcher to a session identifier and a registry view.
func New(sessionID string, reg *registry.Registry) *Dispatcher {
	return &Dispatcher{sessionID: sessionID, registry: reg}
}

// Registry returns the catalog view this dispatcher routes against.
func (d *Dispatcher) Registry() *registry.Registry {
	return d.registry
}

// Invoke resolves the named operation and runs its handler with the given
// arguments. Unknown operations and missing required arguments fail without
// touching the upstream API. The call-start and call-end records emitted here
// are observational only and carry sanitized arguments.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args registry.Args) Outcome {
	desc, ok := d.registry.Resolve(name)
	if !ok {
		logx.WithContext(ctx).Infof("Unknown tool called, session_id=%s, tool=%s", d.sessionID, name)
		return failure(FailureUnknownOperation, "Unknown tool: %s", name)
	}

	if missing := missingRequired(desc, args); len(missing) > 0 {
		logx.WithContext(ctx).Infof("Tool call rejected, session_id=%s, tool=%s, missing=%s",
			d.sessionID, name, strings.Join(missing, ","))
		return failure(FailureInvalidArguments, "missing required arguments for %s: %s",
			name, strings.Join(missing, ", "))
	}

	logx.WithContext(ctx).Infof("Tool call start, session_id=%s, tool=%s, args=%s",
		d.sessionID, name, sanitizeArgs(args))

	start := time.Now()
	payload, err := runHandler(ctx, desc.Handler, args)
	elapsed := time.Since(start)

	if err != nil {
		logx.WithContext(ctx).Errorf("Tool call failed, session_id=%s, tool=%s, duration=%s, error=%v",
			d.sessionID, name, elapsed, err)
		return failure(FailureUpstream, "%s", err.Error())
	}

	logx.WithContext(ctx).Infof("Tool call done, session_id=%s, tool=%s, duration=%s, result=%s",
		d.sessionID, name, elapsed, resultPreview(payload))
	return success(payload)
}

// runHandler shields the Outcome contract from a panicking handler; every
// call must produce exactly one Outcome.
func runHandler(ctx context.Context, h registry.Handler, args registry.Args) (payload any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, args)
}

// missingRequired returns the required parameter names absent from args, in
// the descriptor's declared order.
func missingRequired(desc registry.Descriptor, args registry.Args) []string {
	var missing []string
	for _, p := range desc.Params {
		if p.Required && !args.Has(p.Name) {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

const maxResultPreview = 200

// resultPreview renders a truncated form of the payload for the call-end
// record. Large results are cut off so logs stay bounded.
func resultPreview(payload any) string {
	var data []byte
	switch v := payload.(type) {
	case nil:
		return "<no content>"
	case json.RawMessage:
		data = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("<%T>", payload)
		}
		data = b
	}
	if len(data) > maxResultPreview {
		return string(data[:maxResultPreview]) + "...(truncated)"
	}
	return string(data)
}
