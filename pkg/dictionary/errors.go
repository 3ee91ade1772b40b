package dictionary

import "errors"

// Sentinel errors for dictionary operations.
var (
	// ErrNotFound is returned when the translation file does not exist.
	ErrNotFound = errors.New("dictionary: file not found")

	// ErrParse is returned when a file is not valid JSON/YAML or its top
	// level is not an object.
	ErrParse = errors.New("dictionary: invalid translation file")

	// ErrWrite is returned when saving a translation file fails.
	ErrWrite = errors.New("dictionary: write failed")

	// ErrInvalidKey is returned for empty keys or keys with empty segments.
	ErrInvalidKey = errors.New("dictionary: invalid key")

	// ErrKeyConflict is returned by Save when a key holds a value while
	// longer keys nest beneath it, so no nested form exists.
	ErrKeyConflict = errors.New("dictionary: key conflicts with nested keys")

	// ErrUnsupportedFormat is returned for file extensions other than
	// .json, .yaml, or .yml.
	ErrUnsupportedFormat = errors.New("dictionary: unsupported file format")
)
