package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
)

// Load reads a translation file into a Dict. The encoding is chosen by the
// file extension (.json, .yaml, .yml). Nested objects are flattened into
// dotted keys; document order is preserved.
//
// Returns ErrNotFound if the file does not exist, ErrParse if it is not a
// valid object, and ErrUnsupportedFormat for unknown extensions.
func Load(path string) (*Dict, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("dictionary: reading %s: %w", path, err)
	}

	d, err := decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return d, nil
}

// Save writes the Dict to path in canonical nested form, overwriting any
// existing file. The write is atomic: content goes to a temporary file in
// the same directory which is then renamed over the destination.
//
// Returns ErrKeyConflict if the Dict has no nested representation and
// ErrWrite on I/O failure.
func Save(path string, d *Dict) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	data, err := encode(d, f)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, path, err)
	}
	return nil
}
