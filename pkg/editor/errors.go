package editor

import "errors"

// Sentinel errors for session operations.
var (
	// ErrEmptySourceText is returned by AddEntry when the source-language
	// text is blank; an entry without source text has nothing to translate
	// or display.
	ErrEmptySourceText = errors.New("editor: source text is empty")

	// ErrKeyNotFound is returned by RenameEntry and DeleteEntry when the
	// key exists in neither dictionary.
	ErrKeyNotFound = errors.New("editor: key not found")
)
