package commands

import (
	"io"
	"os"
)

// openInput opens the named file for reading, treating "-" as stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}
