package greeting

import "fmt"

// StatusKind discriminates the Status variants.
type StatusKind int

const (
	KindActive StatusKind = iota
	KindInactive
	KindPending
)

// Status is a tri-state lifecycle tag. The Pending variant carries a
// count; Active and Inactive carry no payload.
type Status struct {
	kind  StatusKind
	count uint32
}

// StatusActive returns the Active tag.
func StatusActive() Status { return Status{kind: KindActive} }

// StatusInactive returns the Inactive tag.
func StatusInactive() Status { return Status{kind: KindInactive} }

// StatusPending returns the Pending tag carrying count.
func StatusPending(count uint32) Status {
	return Status{kind: KindPending, count: count}
}

// Kind returns the variant tag.
func (s Status) Kind() StatusKind { return s.kind }

// PendingCount returns the Pending payload. The second result is false
// for any other variant.
func (s Status) PendingCount() (uint32, bool) {
	return s.count, s.kind == KindPending
}

func (s Status) String() string {
	switch s.kind {
	case KindActive:
		return "active"
	case KindInactive:
		return "inactive"
	case KindPending:
		return fmt.Sprintf("pending(%d)", s.count)
	default:
		return "unknown"
	}
}
