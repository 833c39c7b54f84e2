package dogapi

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ImageList is an ordered batch of opaque image URLs.
type ImageList []string

// Clone returns an independent copy. A nil list stays nil.
func (l ImageList) Clone() ImageList {
	if l == nil {
		return nil
	}
	dup := make(ImageList, len(l))
	copy(dup, l)
	return dup
}

// ImageFilename returns the last path segment of an image URL, or the
// trimmed input when it has no usable path.
func ImageFilename(raw string) string {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil || u.Path == "" || u.Path == "/" {
		return trimmed
	}
	return path.Base(u.Path)
}

// ErrFetchFailed is matched by every FetchError via errors.Is.
var ErrFetchFailed = errors.New("fetch failed")

// fetchFailedText is the user-facing message for rejected and malformed responses.
const fetchFailedText = "Failed to fetch dogs"

// FetchKind tells apart the causes that collapse into a fetch failure.
type FetchKind int

const (
	KindTransport FetchKind = iota
	KindStatus
	KindMalformed
)

func (k FetchKind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindMalformed:
		return "malformed"
	default:
		return "transport"
	}
}

// FetchError is the single failure type produced by the fetcher.
type FetchError struct {
	Kind       FetchKind
	StatusCode int
	Err        error
}

func newTransportError(err error) *FetchError {
	return &FetchError{Kind: KindTransport, Err: err}
}

func newStatusError(code int) *FetchError {
	return &FetchError{Kind: KindStatus, StatusCode: code}
}

func newMalformedError(err error) *FetchError {
	return &FetchError{Kind: KindMalformed, Err: err}
}

// Message is the human-readable text shown to the user.
func (e *FetchError) Message() string {
	switch e.Kind {
	case KindStatus:
		return fetchFailedText
	case KindMalformed:
		return fetchFailedText + ": malformed response"
	default:
		if e.Err == nil {
			return fetchFailedText
		}
		return e.Err.Error()
	}
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: api returned status %d", fetchFailedText, e.StatusCode)
	case KindMalformed:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message(), e.Err)
		}
	}
	return e.Message()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports ErrFetchFailed as a match for every FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// UserMessage extracts the display text for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Message()
	}
	return err.Error()
}
