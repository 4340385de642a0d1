package errno

import (
	"errors"

	"github.com/btcsuite/btcd/btcjson"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage returns a copy carrying a more specific message.
func (e Errno) WithMessage(msg string) Errno {
	return Errno{Code: e.Code, Message: msg}
}

// Decode converts an error into a code and the message shown to clients.
// Node errors keep the node's own message.
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return ErrNodeRPC.Code, rpcErr.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, typed.Message
	}
	var typedPtr *Errno
	if errors.As(err, &typedPtr) {
		return typedPtr.Code, typedPtr.Message
	}

	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Invalid request parameter"}
)

// Explorer Errors (20000+)
var (
	ErrNodeRPC  = Errno{Code: 20101, Message: "Node RPC error"}
	ErrNotFound = Errno{Code: 20201, Message: "Not Found"}
)
