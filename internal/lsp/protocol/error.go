package protocol

import "github.com/sourcegraph/jsonrpc2"

// Error codes defined by the language server protocol on top of the
// JSON-RPC ones.
const (
	CodeServerNotInitialized int64 = -32002
	CodeRequestFailed        int64 = -32803
	CodeRequestCancelled     int64 = -32800
	CodeContentModified      int64 = -32801
)

// CancelParams represents the parameters for a $/cancelRequest notification
type CancelParams struct {
	ID jsonrpc2.ID `json:"id"`
}

// NewRequestCancelledError is the reply sent for a request that was cancelled
// before it completed.
func NewRequestCancelledError() *jsonrpc2.Error {
	return &jsonrpc2.Error{Code: CodeRequestCancelled, Message: "request cancelled"}
}
