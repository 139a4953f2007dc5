package errs

import (
	"errors"
)

var (
	ObjectNotFound = errors.New("object not found")
	// AlreadySent marks a forwarding attempt for a filename that is
	// already present in the sent log.
	AlreadySent     = errors.New("video already sent")
	EmptyQuery      = errors.New("empty search query")
	NoSearchResults = errors.New("no search results")
	NoMusicFiles    = errors.New("no music files available")
)

// IsObjectNotFound reports whether err wraps ObjectNotFound.
func IsObjectNotFound(err error) bool {
	return errors.Is(err, ObjectNotFound)
}
