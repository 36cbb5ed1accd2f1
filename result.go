package fedhost

import (
	"log/slog"

	"github.com/ghettovoice/fedhost/target"
)

// PatchResult describes one Host header install attempt.
type PatchResult struct {
	// Target is the target the install was attempted for, may be nil.
	Target *target.Target
	// Host is the installed Host value, empty on failure.
	Host string
	// Action tells how Host was derived.
	Action Action
	// Err is the reason of a failed install.
	// It matches one of [ErrInvalidArgument], [ErrUnresolvableHost] or [ErrInvalidHeaders].
	Err error
}

// OK reports whether the Host header was installed.
func (r PatchResult) OK() bool { return r.Err == nil }

// Unwrap returns the failure reason, nil on success.
func (r PatchResult) Unwrap() error { return r.Err }

// LogValue implements [slog.LogValuer].
func (r PatchResult) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Any("target", r.Target)}
	if r.Err != nil {
		attrs = append(attrs, slog.Any("error", r.Err))
	} else {
		attrs = append(attrs, slog.String("host", r.Host), slog.String("action", r.Action.String()))
	}
	return slog.GroupValue(attrs...)
}
