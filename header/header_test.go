package header_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/fedhost/header"
	"github.com/ghettovoice/fedhost/internal/errorutil"
)

func TestHeader_Set(t *testing.T) {
	t.Parallel()

	h := header.New(
		"Content-Type", "application/json",
		"host", "example.com",
		"Host", "other.example.com",
		"Authorization", "X-Matrix origin=a",
	)
	h.Set("HOST", "example.com:8448")

	if diff := cmp.Diff(h.Get("host"), []string{"example.com:8448"}); diff != "" {
		t.Errorf("h.Get(\"host\") mismatch\ndiff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(h.Names(), []string{"Content-Type", "Host", "Authorization"}); diff != "" {
		t.Errorf("h.Names() mismatch, Set must keep the original position\ndiff (-got +want):\n%v", diff)
	}
}

func TestHeader_SetValues(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		t.Parallel()

		var h *header.Header
		got := h.SetValues("Host", "example.com:8448")
		if diff := cmp.Diff(got, header.ErrNilHeader, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("h.SetValues() error = %v, want %v", got, header.ErrNilHeader)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		got := new(header.Header).SetValues("", "v")
		if !errors.Is(got, errorutil.ErrInvalidArgument) {
			t.Errorf("h.SetValues(\"\") error = %v, want %v", got, errorutil.ErrInvalidArgument)
		}
	})

	t.Run("replaces values", func(t *testing.T) {
		t.Parallel()

		var h header.Header
		for range 2 {
			if err := h.SetValues("host", "example.com:8448"); err != nil {
				t.Fatalf("h.SetValues() error = %v, want nil", err)
			}
		}
		if diff := cmp.Diff(h.Get("Host"), []string{"example.com:8448"}); diff != "" {
			t.Errorf("h.Get(\"Host\") mismatch\ndiff (-got +want):\n%v", diff)
		}
		if got := h.Len(); got != 1 {
			t.Errorf("h.Len() = %d, want 1", got)
		}
	})
}

func TestHeader_AddDel(t *testing.T) {
	t.Parallel()

	h := new(header.Header).
		Add("Accept", "a").
		Add("accept", "b").
		Add("X-Other", "c")

	if diff := cmp.Diff(h.Get("ACCEPT"), []string{"a", "b"}); diff != "" {
		t.Errorf("h.Get(\"ACCEPT\") mismatch\ndiff (-got +want):\n%v", diff)
	}
	if v, ok := h.First("accept"); !ok || v != "a" {
		t.Errorf("h.First(\"accept\") = (%q, %v), want (\"a\", true)", v, ok)
	}

	h.Del("Accept")
	if h.Has("Accept") {
		t.Error("h.Has(\"Accept\") = true after Del, want false")
	}
	if _, ok := h.First("Accept"); ok {
		t.Error("h.First(\"Accept\") ok = true after Del, want false")
	}
	if got := h.Get("Accept"); got != nil {
		t.Errorf("h.Get(\"Accept\") = %v after Del, want nil", got)
	}
}

func TestHeader_CloneIsolation(t *testing.T) {
	t.Parallel()

	h := header.New("Host", "example.com")
	c := h.Clone()
	c.Set("Host", "example.com:8448")

	if diff := cmp.Diff(h.Get("Host"), []string{"example.com"}); diff != "" {
		t.Errorf("original modified by clone\ndiff (-got +want):\n%v", diff)
	}

	vals := h.Get("Host")
	vals[0] = "mutated"
	if v, _ := h.First("Host"); v != "example.com" {
		t.Errorf("h.First(\"Host\") = %q, Get must return a copy", v)
	}
}

func TestHeader_All(t *testing.T) {
	t.Parallel()

	h := header.New("B", "1", "A", "2", "b", "3")
	var got [][]string
	for name, vals := range h.All() {
		got = append(got, append([]string{name}, vals...))
	}
	want := [][]string{{"B", "1", "3"}, {"A", "2"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("h.All() mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestHeader_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.Header
		want string
	}{
		{"nil", nil, ""},
		{"empty", new(header.Header), ""},
		{"single", header.New("host", "example.com:8448"), "Host: example.com:8448\r\n"},
		{
			"multi",
			header.New("Host", "example.com:8448", "Accept", "a", "accept", "b"),
			"Host: example.com:8448\r\nAccept: a\r\nAccept: b\r\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.String(); got != c.want {
				t.Errorf("hdr.String() = %q, want %q", got, c.want)
			}
		})
	}
}
