package gate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var ErrMarker = errors.New("marker file error")

// Marker is the on-disk record that an update episode was already notified
type Marker struct {
	Path string
}

// NewMarker returns a marker at path
func NewMarker(path string) *Marker {
	return &Marker{Path: path}
}

// Exists reports whether the marker is present as a regular file.
// A directory at the path does not count.
func (m *Marker) Exists() (bool, error) {
	info, err := os.Stat(m.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrMarker, err)
	}
	return info.Mode().IsRegular(), nil
}

// Create makes the marker if missing. Existing content is left alone.
func (m *Marker) Create() error {
	f, err := os.OpenFile(m.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarker, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrMarker, err)
	}
	return nil
}

// Remove deletes the marker
func (m *Marker) Remove() error {
	if err := os.Remove(m.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrMarker, err)
	}
	return nil
}
