package fedhost

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/fedhost/internal/log"
	"github.com/ghettovoice/fedhost/internal/util"
	"github.com/ghettovoice/fedhost/target"
)

// HeaderSetter is a mutable header collection.
// SetValues replaces all values of the named header.
type HeaderSetter interface {
	SetValues(name string, values ...string) error
}

// InstallerOptions contains installer options.
type InstallerOptions struct {
	// DefaultPort is appended to federation targets without a port.
	// If zero, [DefaultPort] is used.
	DefaultPort uint16
	// Schemes maps additional schemes to default ports, see [ResolverOptions].
	Schemes map[string]uint16
	// Log is a logger used to log install results.
	// If nil, [log.Default] is used.
	Log *slog.Logger
	// Stats records install outcomes.
	// If nil, the installer creates its own recorder.
	Stats *StatsRecorder
}

func (o *InstallerOptions) resolverOpts() *ResolverOptions {
	if o == nil {
		return nil
	}
	return &ResolverOptions{
		DefaultPort: o.DefaultPort,
		Schemes:     o.Schemes,
	}
}

func (o *InstallerOptions) log() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Log
}

func (o *InstallerOptions) stats() *StatsRecorder {
	if o == nil || o.Stats == nil {
		return new(StatsRecorder)
	}
	return o.Stats
}

// Installer installs resolved Host header values into header collections.
// It is safe for concurrent use as long as each call gets its own collection.
type Installer struct {
	rslvr *Resolver
	log   *slog.Logger
	stats *StatsRecorder
}

// NewInstaller creates a new installer.
// Options are optional, default options are used if nil.
func NewInstaller(opts *InstallerOptions) *Installer {
	return &Installer{
		rslvr: NewResolver(opts.resolverOpts()),
		log:   opts.log(),
		stats: opts.stats(),
	}
}

// Resolver returns the resolver used by the installer.
func (in *Installer) Resolver() *Resolver { return in.rslvr }

// Stats returns the installer stats recorder.
func (in *Installer) Stats() *StatsRecorder { return in.stats }

func (in *Installer) logger() *slog.Logger {
	if in.log == nil {
		return log.Default()
	}
	return in.log
}

// Install sets the Host header of hdrs to the value resolved for tgt,
// replacing any previous values.
//
// Install never fails the caller. A nil collection, an unresolvable target
// or a failing setter are logged and reported through [PatchResult.Err];
// whatever the collection holds at that point stays as is.
// A nil installer behaves as [DefaultInstaller].
func (in *Installer) Install(ctx context.Context, hdrs HeaderSetter, tgt *target.Target) (res PatchResult) {
	if in == nil {
		return DefaultInstaller().Install(ctx, hdrs, tgt)
	}

	res.Target = tgt

	defer func() {
		if r := recover(); r != nil {
			res.Host, res.Action = "", ActionNone
			res.Err = errtrace.Wrap(newInvalidHeadersError(fmt.Sprintf("panic: %v", r)))
		}

		in.stats.record(res)

		lvl, msg := slog.LevelDebug, "Host header installed"
		if res.Err != nil {
			lvl, msg = slog.LevelWarn, "failed to install Host header"
		}
		in.logger().LogAttrs(ctx, lvl, msg, slog.Any("result", res))
	}()

	if util.IsNil(hdrs) {
		res.Err = errtrace.Wrap(newInvalidHeadersError("nil header collection"))
		return res
	}

	rsl, err := in.rslvr.Resolve(tgt)
	if err != nil {
		res.Err = errtrace.Wrap(err)
		return res
	}

	if err := hdrs.SetValues(HostHeader, rsl.Host); err != nil {
		res.Err = errtrace.Wrap(newInvalidHeadersError(err))
		return res
	}

	res.Host, res.Action = rsl.Host, rsl.Action
	return res
}

var defInstaller = sync.OnceValue(func() *Installer { return NewInstaller(nil) })

// DefaultInstaller returns the installer used by [InstallHostHeader].
// It appends [DefaultPort] and logs to [log.Default].
func DefaultInstaller() *Installer { return defInstaller() }

// InstallHostHeader installs the Host header with [DefaultInstaller].
// See [Installer.Install].
func InstallHostHeader(hdrs HeaderSetter, tgt *target.Target) PatchResult {
	return defInstaller().Install(context.Background(), hdrs, tgt)
}
