// Package grammar implements the ABNF rules used to parse network locations.
package grammar

//go:generate errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(1024)
}

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNodeNotFound Error = "node not found"
)

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// IsHost reports whether s is entirely matched by the host rule.
func IsHost[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := host([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
