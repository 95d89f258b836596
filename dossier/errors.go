package dossier

import "errors"

var (
	ErrDossierShutdown = errors.New("dossier instance was shutdown")
	ErrNoCountryData   = errors.New("knowledge graph has no data for this country")
)

// FailureKind classifies why provider has failed to return any data.
type FailureKind uint8

const (
	FailureUnknown FailureKind = iota

	// FailureTransport is a network error, timeout or non-2xx status.
	FailureTransport

	// FailureParse means that response cannot be decoded.
	FailureParse

	// FailureRejected means that provider has responded with a valid
	// document which reports an error.
	FailureRejected
)

func (f FailureKind) String() string {
	switch f {
	case FailureTransport:
		return "transport"
	case FailureParse:
		return "parse"
	case FailureRejected:
		return "rejected"
	}

	return "unknown"
}

// LookupError is an error returned by providers and a knowledge graph.
// It carries a kind of the failure so callers can count them without
// string matching.
type LookupError struct {
	Kind FailureKind
	Err  error
}

func (l *LookupError) Error() string {
	if l.Err == nil {
		return l.Kind.String() + " failure"
	}

	return l.Kind.String() + " failure: " + l.Err.Error()
}

func (l *LookupError) Unwrap() error {
	return l.Err
}

// NewLookupError wraps an error with a kind of failure. If err is
// already a LookupError, it is returned as is.
func NewLookupError(kind FailureKind, err error) error {
	var lookupErr *LookupError

	if errors.As(err, &lookupErr) {
		return err
	}

	return &LookupError{
		Kind: kind,
		Err:  err,
	}
}

// FailureKindOf extracts a kind of the failure from the error chain.
func FailureKindOf(err error) FailureKind {
	var lookupErr *LookupError

	if errors.As(err, &lookupErr) {
		return lookupErr.Kind
	}

	return FailureUnknown
}
