package storage

import "io"

// Storage is the document-image store used for driver license images.
// Keys are relative paths (folder/file) owned by the caller.
type Storage interface {
	// Save writes the file under folder with a generated name keeping ext,
	// returning the stored key.
	Save(folder, ext string, r io.Reader) (string, error)

	// Delete removes a stored file. Deleting a missing key is not an error.
	Delete(key string) error

	// Open opens a stored file for reading.
	Open(key string) (io.ReadCloser, error)
}
