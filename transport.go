package fedhost

import (
	"net/http"
	"net/textproto"
	"slices"

	"braces.dev/errtrace"
)

// HTTPHeader adapts [net/http.Header] to [HeaderSetter].
// Note that net/http sends [net/http.Request.Host] instead of a "Host" entry of the request header,
// use [RequestHeaders] to patch outgoing requests.
type HTTPHeader http.Header

// SetValues replaces all values of the header name.
func (h HTTPHeader) SetValues(name string, values ...string) error {
	if h == nil {
		return errtrace.Wrap(newInvalidHeadersError("nil http.Header"))
	}
	http.Header(h)[textproto.CanonicalMIMEHeaderKey(name)] = slices.Clone(values)
	return nil
}

type requestHeaders struct {
	req *http.Request
}

// RequestHeaders adapts an outgoing request to [HeaderSetter].
// The Host header is written to [net/http.Request.Host], others to [net/http.Request.Header].
func RequestHeaders(req *http.Request) HeaderSetter { return requestHeaders{req} }

func (h requestHeaders) SetValues(name string, values ...string) error {
	if h.req == nil {
		return errtrace.Wrap(newInvalidHeadersError("nil http.Request"))
	}

	name = textproto.CanonicalMIMEHeaderKey(name)
	if name == HostHeader {
		if len(values) != 1 {
			return errtrace.Wrap(NewInvalidArgumentError("Host header requires exactly one value, got %d", len(values)))
		}
		h.req.Host = values[0]
		return nil
	}

	if h.req.Header == nil {
		h.req.Header = make(http.Header)
	}
	h.req.Header[name] = slices.Clone(values)
	return nil
}

// Transport is an [net/http.RoundTripper] installing the Host header into outgoing requests
// whose context carries a target, see [ContextWithTarget].
//
// The request is cloned before patching. If the patch fails, the original request is sent.
type Transport struct {
	// Base is the underlying round tripper.
	// If nil, [net/http.DefaultTransport] is used.
	Base http.RoundTripper
	// Installer is used to install the Host header.
	// If nil, [DefaultInstaller] is used.
	Installer *Installer
}

func (t *Transport) base() http.RoundTripper {
	if t.Base == nil {
		return http.DefaultTransport
	}
	return t.Base
}

func (t *Transport) installer() *Installer {
	if t.Installer == nil {
		return DefaultInstaller()
	}
	return t.Installer
}

// RoundTrip implements [net/http.RoundTripper].
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	tgt, ok := TargetFromContext(ctx)
	if !ok {
		return errtrace.Wrap2(t.base().RoundTrip(req))
	}

	patched := req.Clone(ctx)
	if res := t.installer().Install(ctx, RequestHeaders(patched), tgt); !res.OK() {
		return errtrace.Wrap2(t.base().RoundTrip(req))
	}
	return errtrace.Wrap2(t.base().RoundTrip(patched))
}

// CloseIdleConnections closes idle connections of the underlying round tripper if it supports it.
func (t *Transport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if c, ok := t.base().(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
