package fedhost_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghettovoice/fedhost"
	"github.com/ghettovoice/fedhost/internal/log"
)

func newEchoHostServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.Host) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func roundTripHost(t *testing.T, tp *fedhost.Transport, req *http.Request) string {
	t.Helper()

	cli := &http.Client{Transport: tp}
	t.Cleanup(cli.CloseIdleConnections)

	resp, err := cli.Do(req)
	if err != nil {
		t.Fatalf("cli.Do() error = %v, want nil", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("io.ReadAll(resp.Body) error = %v, want nil", err)
	}
	return string(body)
}

func TestTransport_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		target string
		want   string
	}{
		{"federation without port", "matrix-federation://example.com", "example.com:8448"},
		{"federation with delegated port", "matrix-federation://example.com:443", "example.com:443"},
		{"unresolvable falls back", "https://example.com", ""},
		{"no target", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			srv := newEchoHostServer(t)
			stats := new(fedhost.StatsRecorder)
			tp := &fedhost.Transport{
				Base: &http.Transport{},
				Installer: fedhost.NewInstaller(&fedhost.InstallerOptions{
					Log:   log.Noop,
					Stats: stats,
				}),
			}

			ctx := context.Background()
			if c.target != "" {
				ctx = fedhost.ContextWithTarget(ctx, mustParse(t, c.target))
			}
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/_matrix/federation/v1/version", nil)
			if err != nil {
				t.Fatalf("http.NewRequestWithContext() error = %v, want nil", err)
			}
			origHost := req.Host

			want := c.want
			if want == "" {
				want = req.URL.Host
			}
			if got := roundTripHost(t, tp, req); got != want {
				t.Errorf("server saw Host %q, want %q", got, want)
			}
			if req.Host != origHost {
				t.Errorf("req.Host = %q after RoundTrip, want unchanged %q", req.Host, origHost)
			}

			wantInstalls := uint64(1)
			if c.target == "" {
				wantInstalls = 0
			}
			if got := stats.Report().Installs; got != wantInstalls {
				t.Errorf("stats.Installs = %d, want %d", got, wantInstalls)
			}
		})
	}
}

func TestContextWithTarget(t *testing.T) {
	t.Parallel()

	if _, ok := fedhost.TargetFromContext(context.Background()); ok {
		t.Error("fedhost.TargetFromContext(empty) ok = true, want false")
	}
	if _, ok := fedhost.TargetFromContext(fedhost.ContextWithTarget(context.Background(), nil)); ok {
		t.Error("fedhost.TargetFromContext(nil target) ok = true, want false")
	}

	tgt := mustParse(t, "matrix-federation://example.com")
	got, ok := fedhost.TargetFromContext(fedhost.ContextWithTarget(context.Background(), tgt))
	if !ok || got != tgt {
		t.Errorf("fedhost.TargetFromContext() = (%v, %v), want (%v, true)", got, ok, tgt)
	}
}
