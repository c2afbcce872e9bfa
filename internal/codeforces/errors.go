package codeforces

import "fmt"

// NotFoundError means the API answered but had no profile for the
// requested handle.
type NotFoundError struct {
	Handle string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Handle)
}

// TransportError is a failed user.info request: the network call itself
// errored or the API rejected it. Comment carries the API's own message
// when the response included one.
type TransportError struct {
	Comment string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Comment != "" {
		return e.Comment
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch user info: %v", e.Err)
	}
	return "failed to fetch user info"
}

func (e *TransportError) Unwrap() error { return e.Err }

// FetchError is a failed contest or problem listing.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s", e.Resource)
}

func (e *FetchError) Unwrap() error { return e.Err }
