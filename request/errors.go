package request

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	// InvalidURL means base URL, path and query items did not make a valid absolute URL.
	InvalidURL Kind = iota
	// URLEncodingFailed is reserved for percent-encoding failures. Nothing produces it yet.
	URLEncodingFailed
)

func (k Kind) String() string {
	switch k {
	case InvalidURL:
		return "invalid URL"
	case URLEncodingFailed:
		return "URL encoding failed"
	default:
		return fmt.Sprintf("unknown request error: %d", int(k))
	}
}

type Error struct {
	Kind    Kind
	BaseURL string
	Path    string
	Err     error
}

func newError(kind Kind, spec Spec, err error) error {
	return errors.WithStack(&Error{
		Kind:    kind,
		BaseURL: spec.BaseURL,
		Path:    spec.Path,
		Err:     err,
	})
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: base=%q path=%q", e.Kind, e.BaseURL, e.Path)
	}
	return fmt.Sprintf("%s: base=%q path=%q: %v", e.Kind, e.BaseURL, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of a request error, looking through stack wrappers.
func KindOf(err error) (Kind, bool) {
	if reqErr, ok := errors.Cause(err).(*Error); ok {
		return reqErr.Kind, true
	}
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr.Kind, true
	}
	return 0, false
}

func IsInvalidURL(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == InvalidURL
}
