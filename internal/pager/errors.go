package pager

import "errors"

// Sentinel errors. ErrInvalidAddress and ErrExhausted are the two
// returnable error kinds of spec §7; its third kind, invariant
// violations, is reported by Audit instead. ErrNoCurrentProcess covers
// operations that only make sense with a current process — the spec
// leaves that case implicit ("all public operations ... act on
// current"), so it gets its own sentinel rather than being folded into
// ErrInvalidAddress. ErrUnknownProcess and ErrProcessExists cover
// registry misuse by Switch and Create.
var (
	// ErrInvalidAddress is returned by Fault and Syslog when the
	// referenced virtual address is not covered by a live PageRecord of
	// the current process, or the Syslog region falls outside the
	// arena. No state is mutated.
	ErrInvalidAddress = errors.New("pager: invalid virtual address")

	// ErrExhausted is returned by Extend when the arena is full or the
	// block pool is empty. No state is mutated.
	ErrExhausted = errors.New("pager: resource exhausted")

	// ErrNoCurrentProcess is returned by operations that require a
	// current process (Extend, Fault, Destroy, Syslog) when none has
	// been switched in.
	ErrNoCurrentProcess = errors.New("pager: no current process")

	// ErrUnknownProcess is returned by Switch for a pid that is not
	// registered.
	ErrUnknownProcess = errors.New("pager: unknown process")

	// ErrProcessExists is returned by Create when pid is already
	// registered.
	ErrProcessExists = errors.New("pager: process already exists")
)
