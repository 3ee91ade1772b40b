// Package dictionary implements an ordered key-value store for translation
// files.
//
// A Dict maps dot-separated key paths (e.g. "buttons.save") to string values
// and remembers the order in which keys were first inserted. Translation
// files are JSON or YAML objects in flat, nested, or mixed form; loading
// flattens nested objects into dotted keys, and saving writes one canonical
// nested form with sorted keys.
//
// Basic usage:
//
//	dict, err := dictionary.Load("locales/pl.json")
//	if err != nil {
//		// handle error
//	}
//
//	_ = dict.Set("header.welcome", "Witaj")
//
//	if err := dictionary.Save("locales/pl.json", dict); err != nil {
//		// handle error
//	}
//
// # File Formats
//
// The format is chosen by file extension: .json for JSON, .yaml or .yml for
// YAML. Both of these inputs load to the same Dict:
//
//	{"header": {"welcome": "Witaj"}}
//	{"header.welcome": "Witaj"}
//
// Only string-shaped leaves survive loading: numbers and booleans become
// their literal text, null becomes the empty string, and an empty object
// ({} or an empty YAML mapping) holds no entries at all, so its key is
// dropped. Arrays are rejected with ErrParse.
//
// # Canonical Form
//
// Save always writes nested objects with keys sorted alphabetically,
// two-space indentation, unescaped non-ASCII text, and a trailing newline.
// Saving a freshly loaded Dict therefore normalizes the file; saving it
// again reproduces it byte for byte.
//
// # Key Conflicts
//
// A Dict may hold both a value at "a" and values under "a.*" (a flat file
// can express that), but such a Dict has no nested representation. Save
// rejects it with ErrKeyConflict rather than dropping either entry.
//
// # Atomic Writes
//
// Save writes to a temporary file in the target directory and renames it
// over the destination, so a crash mid-write never leaves a truncated
// translation file behind.
package dictionary
