package storage

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
	ErrNotFound          StorerError = "record not found"
	ErrConflict          StorerError = "unique constraint violated"
)

func (e StorerError) Error() string {
	return string(e)
}
