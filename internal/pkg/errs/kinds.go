package errs

import cr "github.com/cockroachdb/errors"

type Kind string

const (
	KindUnknown          Kind = "UNKNOWN"
	KindNotFound         Kind = "NOT_FOUND"
	KindInvalidArgument  Kind = "INVALID_ARGUMENT"
	KindConflict         Kind = "CONFLICT"
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindTransient        Kind = "TRANSIENT"
)

// Kind markers. Business errors are marked with exactly one of these.
var (
	ErrNotFound         = cr.New("not found")
	ErrInvalidArgument  = cr.New("invalid argument")
	ErrConflict         = cr.New("conflict")
	ErrPermissionDenied = cr.New("permission denied")
	ErrTransient        = cr.New("transient failure")
)

var kindMarkers = []struct {
	kind   Kind
	marker error
}{
	{KindNotFound, ErrNotFound},
	{KindInvalidArgument, ErrInvalidArgument},
	{KindConflict, ErrConflict},
	{KindPermissionDenied, ErrPermissionDenied},
	{KindTransient, ErrTransient},
}

// NewKind creates a sentinel error carrying the given kind marker.
func NewKind(msg string, kindMarker error) error {
	return cr.Mark(cr.New(msg), kindMarker)
}

// AsKind marks an arbitrary error with a kind, keeping its chain intact.
func AsKind(err error, kindMarker error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, kindMarker)
}

func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, km := range kindMarkers {
		if cr.Is(err, km.marker) {
			return km.kind
		}
	}
	return KindUnknown
}
