package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rakeshutekar/github-mcp/internal/dispatch"
	"github.com/rakeshutekar/github-mcp/internal/protocol"
	"github.com/rakeshutekar/github-mcp/internal/registry"
	"github.com/rakeshutekar/github-mcp/internal/svc"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// serverInfo is the GET /mcp capability probe payload. The catalog includes
// parameter metadata so callers can discover operations without a session.
type serverInfo struct {
	Name       string                `json:"name"`
	Version    string                `json:"version"`
	Protocol   string                `json:"protocol"`
	Operations []string              `json:"operations"`
	Catalog    []registry.Descriptor `json:"catalog"`
}

// discoverResult answers the in-session discovery message.
type discoverResult struct {
	Operations []registry.Descriptor `json:"operations"`
}

type errorBody struct {
	Error string `json:"error"`
}

type terminateResult struct {
	Status string `json:"status"`
}

// McpInfoHandler answers the sessionless capability probe.
func McpInfoHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJson(w, serverInfo{
			Name:       protocol.ServerName,
			Version:    protocol.Version,
			Protocol:   protocol.Revision,
			Operations: svcCtx.Registry.Names(),
			Catalog:    svcCtx.Registry.List(),
		})
	}
}

// McpMessageHandler carries one protocol message per POST. The state machine
// is: resolve the session from the header, decode the body, dispatch, write
// the correlated response. Every path out of here produces either a
// well-formed envelope or an HTTP-level error body, never a dropped
// connection.
func McpMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logx.ContextWithFields(r.Context(), logx.Field("request_id", uuid.NewString()))

		presented := strings.TrimSpace(r.Header.Get(protocol.SessionHeader))
		sess, created := svcCtx.Sessions.Resolve(presented)
		w.Header().Set(protocol.SessionHeader, sess.ID)
		if created && presented != "" {
			logx.WithContext(ctx).Infof("Unrecognized session presented, issued fresh session, presented=%s, session_id=%s",
				presented, sess.ID)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			httpx.WriteJson(w, http.StatusInternalServerError, errorBody{Error: "failed to read request body"})
			return
		}
		defer r.Body.Close()

		var msg protocol.Message
		if err := json.Unmarshal(body, &msg); err != nil {
			logx.WithContext(ctx).Errorf("Malformed message, session_id=%s, error=%v", sess.ID, err)
			httpx.WriteJson(w, http.StatusInternalServerError, errorBody{Error: "malformed protocol message"})
			return
		}

		switch msg.Kind() {
		case protocol.KindInitialize:
			httpx.OkJson(w, protocol.InitializeResult{
				Protocol:   protocol.Revision,
				ServerName: protocol.ServerName,
				Version:    protocol.Version,
			})
		case protocol.KindDiscover:
			httpx.OkJson(w, discoverResult{Operations: sess.Dispatcher.Registry().List()})
		case protocol.KindCall:
			outcome := sess.Dispatcher.Invoke(ctx, msg.Operation, registry.Args(msg.Args))
			httpx.OkJson(w, envelope(outcome))
		default:
			logx.WithContext(ctx).Errorf("Unclassifiable message, session_id=%s, type=%q", sess.ID, msg.Type)
			httpx.WriteJson(w, http.StatusInternalServerError, errorBody{Error: "message is neither a handshake, discovery nor call"})
		}
	}
}

// McpTerminateHandler removes the session named by the header. 200 when a
// binding existed, 404 otherwise.
func McpTerminateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(protocol.SessionHeader))
		if id == "" || !svcCtx.Sessions.Terminate(id) {
			httpx.WriteJson(w, http.StatusNotFound, terminateResult{Status: "not found"})
			return
		}
		httpx.OkJson(w, terminateResult{Status: "terminated"})
	}
}

// envelope serializes an invocation outcome into the wire envelope. Both
// branches are text content; the error flag is the only discriminator.
func envelope(o dispatch.Outcome) *protocol.CallResult {
	if o.Failed() {
		return protocol.ErrorResult(o.Failure.Message)
	}

	var text string
	switch payload := o.Payload.(type) {
	case nil:
		text = "null"
	case json.RawMessage:
		text = string(payload)
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return protocol.ErrorResult("result could not be serialized")
		}
		text = string(data)
	}
	return protocol.TextResult(text)
}
