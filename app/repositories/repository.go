package repositories

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

var (
	// ErrNotFound is returned when the target record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateTitle is returned when a post title is already taken by
	// another post. Titles are globally unique.
	ErrDuplicateTitle = errors.New("post title already exists")
)

// Open opens the Badger database at path. An empty path opens an
// in-memory database, which the tests use for isolation.
func Open(path string) (*badger.DB, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	return badger.Open(opts.WithLogger(nil))
}
