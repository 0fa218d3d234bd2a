package dump

import "github.com/pkg/errors"

var (
	// ErrImageLoad indicates the input is missing, unreadable or undecodable.
	ErrImageLoad = errors.New("image load failed")
	// ErrOutputWrite indicates the dump file could not be created or written.
	ErrOutputWrite = errors.New("output write failed")
	// ErrMalformedLine indicates a dump line that does not parse as hex literals.
	ErrMalformedLine = errors.New("malformed dump line")
)

// kindError tags a wrapped cause with one of the sentinel kinds above, so
// errors.Is matches both the kind and anything in the cause chain.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string { return e.kind.Error() + ": " + e.err.Error() }

func (e *kindError) Unwrap() error { return e.err }

func (e *kindError) Is(target error) bool { return target == e.kind }

func imageLoadError(err error, format string, args ...interface{}) error {
	return &kindError{kind: ErrImageLoad, err: errors.Wrapf(err, format, args...)}
}

func outputWriteError(err error, format string, args ...interface{}) error {
	return &kindError{kind: ErrOutputWrite, err: errors.Wrapf(err, format, args...)}
}
