package pkg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DirectoryObjectRepository serves packed objects from .DAT files in a
// directory. Object files on disk already carry their entry header and
// chunk, so embedding one is a straight copy.
type DirectoryObjectRepository struct {
	Dir string
}

// WritePackedObject copies the named object's file into the save stream
func (r *DirectoryObjectRepository) WritePackedObject(w io.Writer, name string) error {
	path := filepath.Join(r.Dir, strings.TrimSpace(name)+".DAT")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("object %q not found in %s: %w", name, r.Dir, err)
	}
	defer f.Close()
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to copy object %q: %w", name, err)
	}
	return nil
}
