package util_test

import (
	"net/http"
	"testing"

	"github.com/ghettovoice/fedhost/internal/util"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		nilPtr *http.Request
		nilMap http.Header
	)

	cases := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", nilPtr, true},
		{"typed nil map", nilMap, true},
		{"pointer", &http.Request{}, false},
		{"map", http.Header{}, false},
		{"string", "", false},
		{"int", 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := util.IsNil(c.v); got != c.want {
				t.Errorf("util.IsNil(%#v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}
