package protocol

// ServerName and Version identify this server in discovery responses.
const (
	ServerName = "github-mcp"
	Version    = "1.0.0"

	// Revision is the protocol revision spoken over /mcp.
	Revision = "2024-11-05"
)

// SessionHeader carries the session identifier on every /mcp request and
// response. A POST without it (or with an unrecognized value) is assigned a
// fresh session whose identifier is echoed back through the same header.
const SessionHeader = "Mcp-Session-Id"

// Message kinds carried in a POST /mcp body.
const (
	KindInitialize = "initialize"
	KindDiscover   = "discover"
	KindCall       = "call"
)

// Message is the single wire shape for everything a client POSTs to /mcp.
// Type selects the handshake or discovery paths; a body that only names an
// operation is treated as a call.
type Message struct {
	Type      string         `json:"type,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Args      map[string]any `json:"args,omitempty"`
}

// Kind classifies the message. It returns "" when the message fits no known
// shape; the transport answers those with an HTTP-level error, since there is
// no operation to attach a failure envelope to.
func (m *Message) Kind() string {
	switch m.Type {
	case KindInitialize, KindDiscover:
		return m.Type
	case "", KindCall:
		if m.Operation != "" {
			return KindCall
		}
	}
	return ""
}

// Content is one element of the envelope content list. Both success and
// failure branches are carried as text content so callers can handle a single
// shape at the transport level.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the invocation outcome envelope written for every call
// message. IsError distinguishes the failure branch.
type CallResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// TextResult wraps a successful payload rendering.
func TextResult(text string) *CallResult {
	return &CallResult{Content: []Content{{Type: "text", Text: text}}}
}

// ErrorResult wraps a failure message in the stable "Error: <message>" form
// with the error flag set.
func ErrorResult(message string) *CallResult {
	return &CallResult{
		Content: []Content{{Type: "text", Text: "Error: " + message}},
		IsError: true,
	}
}

// InitializeResult acknowledges the session handshake.
type InitializeResult struct {
	Protocol   string `json:"protocolVersion"`
	ServerName string `json:"serverName"`
	Version    string `json:"version"`
}
