package storage

type storageError string

// ErrClosed is returned by stores that have been closed.
const ErrClosed = storageError("store closed")

func (e storageError) Error() string {
	return string(e)
}
