package fedhost

import "github.com/ghettovoice/fedhost/internal/errorutil"

// Error represents a fedhost error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrUnresolvableHost is returned when a target has no port and its scheme has no default one.
	ErrUnresolvableHost Error = "unresolvable host"
	// ErrInvalidHeaders is returned when the header collection can not accept the Host header.
	ErrInvalidHeaders Error = "invalid header collection"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

func newUnresolvableHostError(args ...any) error {
	return errorutil.NewWrapperError(ErrUnresolvableHost, args...) //errtrace:skip
}

func newInvalidHeadersError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidHeaders, args...) //errtrace:skip
}
