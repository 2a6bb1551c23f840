package community

import "errors"

// Kind classifies a workflow failure so handlers can map it to a response
// without string-matching messages.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindNotFound
	KindInvalidState
	KindSelfVote
	KindPayment
)

// Error is the machine-readable failure surfaced to callers. Storage-level
// failures are translated into the nearest kind before they leave the service;
// raw database errors are never returned.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// KindOf returns the kind carried by err, or 0 when err is not a workflow error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

func validationErr(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func authorizationErr() error {
	// intentionally generic, handlers must not explain why access was denied
	return &Error{Kind: KindAuthorization, Message: "access denied"}
}

func notFoundErr(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func invalidStateErr(msg string) error {
	return &Error{Kind: KindInvalidState, Message: msg}
}

func selfVoteErr() error {
	return &Error{Kind: KindSelfVote, Message: "voting on your own post is not allowed"}
}

func paymentErr(msg string) error {
	return &Error{Kind: KindPayment, Message: msg}
}
