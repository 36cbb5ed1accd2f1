// Package fedhost fixes the Host header of outbound federation requests.
//
// A destination addressed as "matrix-federation://example.com" carries no
// port, yet the server behind it listens on the federation port 8448. The
// HTTP layer would send "Host: example.com" for such a request, which makes
// the remote side see a server name that differs from the one it is
// addressed by. [ResolveHost] computes the correct value and [Installer]
// writes it into a header collection:
//
//	tgt, _ := target.Parse("matrix-federation://example.com/_matrix/key/v2/server")
//	host, err := fedhost.ResolveHost(tgt, fedhost.DefaultPort) // "example.com:8448"
//
// An explicit port always wins, whatever default is configured, so a port
// obtained through delegation is never overridden.
//
// Installing the header is best effort: [Installer.Install] never fails the
// caller, it returns a [PatchResult] describing what happened and logs
// failures instead.
package fedhost

//go:generate errtrace -w .
//go:generate go tool mockgen -destination internal/testutil/hdrmock/hdrmock.go -package hdrmock . HeaderSetter

const (
	// FederationScheme is the delegation scheme of server-to-server requests.
	FederationScheme = "matrix-federation"
	// DefaultPort is the port appended to federation targets without one.
	DefaultPort uint16 = 8448
	// HostHeader is the name of the header installed by [Installer].
	HostHeader = "Host"
)
