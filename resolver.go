package fedhost

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/fedhost/internal/util"
	"github.com/ghettovoice/fedhost/target"
)

// Action tells how the Host value was derived from the target.
type Action uint8

const (
	ActionNone Action = iota
	// ActionKeptPort means the target carried an explicit port and its netloc was used as is.
	ActionKeptPort
	// ActionAppendedPort means the scheme default port was appended to the netloc.
	ActionAppendedPort
)

func (a Action) String() string {
	switch a {
	case ActionKeptPort:
		return "kept_port"
	case ActionAppendedPort:
		return "appended_port"
	default:
		return "none"
	}
}

// Resolution is a resolved Host header value.
type Resolution struct {
	Host   string
	Action Action
}

// ResolveHost returns the Host header value for the target.
//
// A target with an explicit port resolves to its netloc unchanged, whatever defPort is.
// A "matrix-federation" target without a port resolves to netloc with ":defPort" appended,
// zero defPort means [DefaultPort].
// Any other target without a port fails with [ErrUnresolvableHost].
func ResolveHost(tgt *target.Target, defPort uint16) (string, error) {
	res, err := resolve(tgt, defPort, nil)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return res.Host, nil
}

// ResolverOptions contains resolver options.
type ResolverOptions struct {
	// DefaultPort is appended to federation targets without a port.
	// If zero, [DefaultPort] is used.
	DefaultPort uint16
	// Schemes maps additional schemes to ports appended to their targets without a port.
	// The federation scheme can not be overridden here, use DefaultPort instead.
	Schemes map[string]uint16
}

func (o *ResolverOptions) defPort() uint16 {
	if o == nil || o.DefaultPort == 0 {
		return DefaultPort
	}
	return o.DefaultPort
}

func (o *ResolverOptions) schemes() map[string]uint16 {
	if o == nil || len(o.Schemes) == 0 {
		return nil
	}
	schemes := make(map[string]uint16, len(o.Schemes))
	for k, v := range o.Schemes {
		schemes[util.LCase(k)] = v
	}
	return schemes
}

// Resolver resolves Host header values with a configured default port.
// It is immutable and safe for concurrent use.
type Resolver struct {
	defPort uint16
	schemes map[string]uint16
}

// NewResolver creates a new resolver.
// Options are optional, default options are used if nil.
func NewResolver(opts *ResolverOptions) *Resolver {
	return &Resolver{
		defPort: opts.defPort(),
		schemes: opts.schemes(),
	}
}

// DefaultPort returns the port appended to federation targets without one.
func (r *Resolver) DefaultPort() uint16 { return r.defPort }

// Resolve returns the Host header value for the target.
// See [ResolveHost] for the rules, additional schemes are consulted after the federation scheme.
func (r *Resolver) Resolve(tgt *target.Target) (Resolution, error) {
	return errtrace.Wrap2(resolve(tgt, r.defPort, r.schemes))
}

func resolve(tgt *target.Target, defPort uint16, schemes map[string]uint16) (Resolution, error) {
	if !tgt.IsValid() {
		return Resolution{}, errtrace.Wrap(NewInvalidArgumentError("invalid target %q", tgt))
	}

	if _, ok := tgt.Port(); ok {
		return Resolution{Host: tgt.Netloc(), Action: ActionKeptPort}, nil
	}

	var (
		port uint16
		ok   bool
	)
	if tgt.Scheme() == FederationScheme {
		port, ok = defPort, true
		if port == 0 {
			port = DefaultPort
		}
	} else {
		port, ok = schemes[tgt.Scheme()]
	}
	if !ok {
		return Resolution{}, errtrace.Wrap(newUnresolvableHostError(
			"no port in %q and no default port for scheme %q", tgt.Netloc(), tgt.Scheme(),
		))
	}

	return Resolution{
		Host:   tgt.Netloc() + ":" + strconv.Itoa(int(port)),
		Action: ActionAppendedPort,
	}, nil
}
