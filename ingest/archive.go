// backend/ingest/archive.go
package ingest

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
)

// ArchiveError is fatal: the process cannot start without the dataset.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive %s: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// readArchiveMember opens the zip container and returns the contents of
// its single tabular member. The container is expected to hold exactly one
// file; like the export tooling that produces it, we take the first entry.
func readArchiveMember(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ArchiveError{Path: path, Err: err}
	}
	defer r.Close()

	if len(r.File) == 0 {
		return nil, &ArchiveError{Path: path, Err: errors.New("container has no members")}
	}

	member := r.File[0]
	rc, err := member.Open()
	if err != nil {
		return nil, &ArchiveError{Path: path, Err: fmt.Errorf("failed to open member %s: %w", member.Name, err)}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ArchiveError{Path: path, Err: fmt.Errorf("failed to read member %s: %w", member.Name, err)}
	}
	return data, nil
}
