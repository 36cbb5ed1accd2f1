package fedhost

import (
	"errors"
	"sync/atomic"
	"time"
)

// StatsReport is a snapshot of install outcomes.
type StatsReport struct {
	Time time.Time `json:"time"`
	// Installs is a number of install attempts.
	Installs uint64 `json:"installs"`
	// Patched is a number of installs that appended the default port.
	Patched uint64 `json:"patched"`
	// Kept is a number of installs that kept an explicit port.
	Kept uint64 `json:"kept"`
	// Failed is a number of failed installs.
	Failed uint64 `json:"failed"`
	// Unresolvable is a number of installs failed with [ErrUnresolvableHost].
	Unresolvable uint64 `json:"unresolvable"`
	// InvalidHeaders is a number of installs failed with [ErrInvalidHeaders].
	InvalidHeaders uint64 `json:"invalid_headers"`
	// InvalidTarget is a number of installs failed with [ErrInvalidArgument].
	InvalidTarget uint64 `json:"invalid_target"`
}

// StatsRecorder counts install outcomes.
// The zero value is ready to use.
type StatsRecorder struct {
	installs     atomic.Uint64
	patched      atomic.Uint64
	kept         atomic.Uint64
	failed       atomic.Uint64
	unresolvable atomic.Uint64
	invalidHdrs  atomic.Uint64
	invalidTgt   atomic.Uint64
}

func (s *StatsRecorder) record(res PatchResult) {
	if s == nil {
		return
	}

	s.installs.Add(1)
	if res.Err == nil {
		switch res.Action {
		case ActionAppendedPort:
			s.patched.Add(1)
		case ActionKeptPort:
			s.kept.Add(1)
		}
		return
	}

	s.failed.Add(1)
	switch {
	case errors.Is(res.Err, ErrInvalidHeaders):
		s.invalidHdrs.Add(1)
	case errors.Is(res.Err, ErrUnresolvableHost):
		s.unresolvable.Add(1)
	case errors.Is(res.Err, ErrInvalidArgument):
		s.invalidTgt.Add(1)
	}
}

// Report returns the current counters.
func (s *StatsRecorder) Report() StatsReport {
	if s == nil {
		return StatsReport{Time: time.Now()}
	}
	return StatsReport{
		Time:           time.Now(),
		Installs:       s.installs.Load(),
		Patched:        s.patched.Load(),
		Kept:           s.kept.Load(),
		Failed:         s.failed.Load(),
		Unresolvable:   s.unresolvable.Load(),
		InvalidHeaders: s.invalidHdrs.Load(),
		InvalidTarget:  s.invalidTgt.Load(),
	}
}

// Reset zeroes all counters.
func (s *StatsRecorder) Reset() {
	if s == nil {
		return
	}
	for _, c := range []*atomic.Uint64{
		&s.installs, &s.patched, &s.kept, &s.failed, &s.unresolvable, &s.invalidHdrs, &s.invalidTgt,
	} {
		c.Store(0)
	}
}
