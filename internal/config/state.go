package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// stateFileName sits in the user's home directory, same place the tool has
// always kept it.
const stateFileName = ".polyglot.json"

// State remembers the translation-file pair across runs so the user is not
// asked for paths on every start.
type State struct {
	SourceFile string `json:"pl_file"`
	TargetFile string `json:"en_file"`
}

// Complete reports whether both remembered paths point at existing files.
func (s State) Complete() bool {
	for _, path := range []string{s.SourceFile, s.TargetFile} {
		if path == "" {
			return false
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return false
		}
	}
	return true
}

// DefaultStatePath returns the state file location in the user's home
// directory.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving home directory: %w", err)
	}
	return filepath.Join(home, stateFileName), nil
}

// LoadState reads the remembered file pair. A missing or corrupt state file
// is not an error; it degrades to an empty State and the caller asks the
// user for paths, matching how the tool always behaved.
func LoadState(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}
	}
	return st
}

// SaveState persists the file pair atomically.
func SaveState(path string, st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding state: %w", err)
	}
	data = append(data, '\n')
	if err := renameio.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: writing state file: %w", err)
	}
	return nil
}
