package sheets

import "fmt"

// FetchError reports that one of the two feeds could not be retrieved or did
// not match its expected schema. It never propagates past the snapshot
// cache; the affected table degrades to empty instead.
type FetchError struct {
	Feed string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s feed: %v", e.Feed, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
