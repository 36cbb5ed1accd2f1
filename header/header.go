// Package header implements an ordered, case-insensitive header collection.
//
// [Header] keeps header names in the order they were first added and
// stores each name in canonical MIME form, so "host", "HOST" and "Host"
// address the same entry. It satisfies the setter contract used by the
// Host header installer.
package header

//go:generate errtrace -w .

import (
	"io"
	"iter"
	"net/textproto"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/fedhost/internal/errorutil"
	"github.com/ghettovoice/fedhost/internal/util"
)

// ErrNilHeader is returned when mutating a nil [Header].
const ErrNilHeader errorutil.Error = "nil header"

type entry struct {
	name   string
	values []string
}

// Header is an ordered multi-map from header name to values.
// The zero value is an empty header ready to use.
type Header struct {
	entries []entry
}

// New creates a header with the given name/value pairs.
// kvs must contain an even number of elements.
func New(kvs ...string) *Header {
	h := new(Header)
	for i := 0; i+1 < len(kvs); i += 2 {
		h.Add(kvs[i], kvs[i+1])
	}
	return h
}

// CanonicalName returns the canonical MIME form of the header name.
func CanonicalName(name string) string { return textproto.CanonicalMIMEHeaderKey(name) }

func (h *Header) index(name string) int {
	if h == nil {
		return -1
	}
	name = CanonicalName(name)
	return slices.IndexFunc(h.entries, func(e entry) bool { return e.name == name })
}

// Get returns all values of the header name.
func (h *Header) Get(name string) []string {
	i := h.index(name)
	if i < 0 {
		return nil
	}
	return slices.Clone(h.entries[i].values)
}

// First returns the first value of the header name.
func (h *Header) First(name string) (string, bool) {
	i := h.index(name)
	if i < 0 || len(h.entries[i].values) == 0 {
		return "", false
	}
	return h.entries[i].values[0], true
}

// Has reports whether the header name is present.
func (h *Header) Has(name string) bool { return h.index(name) >= 0 }

// Set replaces all values of the header name.
// An existing header keeps its position, a new one is appended.
func (h *Header) Set(name string, values ...string) *Header {
	if i := h.index(name); i >= 0 {
		h.entries[i].values = slices.Clone(values)
		return h
	}
	h.entries = append(h.entries, entry{name: CanonicalName(name), values: slices.Clone(values)})
	return h
}

// Add appends a value to the header name.
func (h *Header) Add(name, value string) *Header {
	if i := h.index(name); i >= 0 {
		h.entries[i].values = append(h.entries[i].values, value)
		return h
	}
	h.entries = append(h.entries, entry{name: CanonicalName(name), values: []string{value}})
	return h
}

// Del removes the header name.
func (h *Header) Del(name string) *Header {
	if i := h.index(name); i >= 0 {
		h.entries = slices.Delete(h.entries, i, i+1)
	}
	return h
}

// SetValues replaces all values of the header name.
// It fails with [ErrNilHeader] on a nil receiver.
func (h *Header) SetValues(name string, values ...string) error {
	if h == nil {
		return errtrace.Wrap(ErrNilHeader)
	}
	if name == "" {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty header name"))
	}
	h.Set(name, values...)
	return nil
}

// Len returns the number of distinct header names.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Names returns header names in insertion order.
func (h *Header) Names() []string {
	if h == nil {
		return nil
	}
	names := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		names = append(names, e.name)
	}
	return names
}

// All iterates over header names and their values in insertion order.
func (h *Header) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if h == nil {
			return
		}
		for _, e := range h.entries {
			if !yield(e.name, slices.Clone(e.values)) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	if h == nil {
		return nil
	}
	h2 := &Header{entries: make([]entry, len(h.entries))}
	for i, e := range h.entries {
		h2.entries[i] = entry{name: e.name, values: slices.Clone(e.values)}
	}
	return h2
}

// RenderTo writes the header as "Name: value\r\n" lines, one line per value.
func (h *Header) RenderTo(w io.Writer) (num int, err error) {
	if h == nil {
		return 0, nil
	}
	for _, e := range h.entries {
		for _, v := range e.values {
			n, err := io.WriteString(w, e.name+": "+v+"\r\n")
			num += n
			if err != nil {
				return num, errtrace.Wrap(err)
			}
		}
	}
	return num, nil
}

// String returns the rendered header.
func (h *Header) String() string {
	if h == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	h.RenderTo(sb) //nolint:errcheck
	return sb.String()
}
