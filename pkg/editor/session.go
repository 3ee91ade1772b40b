package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/polyglot/pkg/dictionary"
	"github.com/dmitrymomot/polyglot/pkg/translator"
)

// Default language pair, matching the translation files this tool grew up
// editing.
const (
	DefaultSourceLang = "pl"
	DefaultTargetLang = "en-GB"
)

// FilePair names the two translation files of an editing session.
type FilePair struct {
	SourcePath string
	TargetPath string
}

// Session holds the in-memory state of one editing session: the source and
// target dictionaries, their backing files, and the optional translation
// provider. Construct it with NewSession; the zero value is not usable.
type Session struct {
	source *dictionary.Dict
	target *dictionary.Dict
	pair   FilePair

	provider   translator.Provider
	sourceLang string
	targetLang string

	log       *slog.Logger
	onWarning func(error)

	// Snapshots taken at load and after every successful save; Dirty
	// compares against them.
	savedSource *dictionary.Dict
	savedTarget *dictionary.Dict

	createMissing bool
}

// NewSession loads both translation files and returns a ready session.
// Load errors surface directly unless WithCreateMissing is set, in which
// case a missing file starts as an empty dictionary.
func NewSession(pair FilePair, opts ...Option) (*Session, error) {
	s := &Session{
		pair:       pair,
		sourceLang: DefaultSourceLang,
		targetLang: DefaultTargetLang,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.onWarning == nil {
		s.onWarning = func(err error) {
			s.log.Warn("session warning", slog.String("error", err.Error()))
		}
	}

	var err error
	if s.source, err = s.loadDict(pair.SourcePath); err != nil {
		return nil, err
	}
	if s.target, err = s.loadDict(pair.TargetPath); err != nil {
		return nil, err
	}
	s.snapshot()

	s.log.Debug("session loaded",
		slog.String("source", pair.SourcePath),
		slog.Int("source_keys", s.source.Len()),
		slog.String("target", pair.TargetPath),
		slog.Int("target_keys", s.target.Len()),
	)
	return s, nil
}

func (s *Session) loadDict(path string) (*dictionary.Dict, error) {
	d, err := dictionary.Load(path)
	if err != nil {
		if s.createMissing && errors.Is(err, dictionary.ErrNotFound) {
			return dictionary.New(), nil
		}
		return nil, err
	}
	return d, nil
}

// AddEntry merges a key with its language pair into both dictionaries,
// last-write-wins. When targetText is empty and autoTranslate is set, the
// provider fills it in; provider absence or failure leaves the target empty
// and reports a warning wrapping translator.ErrUnavailable instead of
// failing the merge.
//
// The key and source text are validated before any mutation: on error,
// neither dictionary changes.
func (s *Session) AddEntry(ctx context.Context, key, sourceText, targetText string, autoTranslate bool) (Entry, error) {
	if err := dictionary.ValidateKey(key); err != nil {
		return Entry{}, err
	}
	if sourceText == "" {
		return Entry{}, fmt.Errorf("%w: key %q", ErrEmptySourceText, key)
	}

	if targetText == "" && autoTranslate {
		targetText = s.translate(ctx, key, sourceText)
	}

	// Key and texts are valid past this point, both Sets succeed.
	_ = s.source.Set(key, sourceText)
	_ = s.target.Set(key, targetText)

	s.log.Debug("entry added", slog.String("key", key))
	return Entry{Key: key, Source: sourceText, Target: targetText}, nil
}

func (s *Session) translate(ctx context.Context, key, sourceText string) string {
	if s.provider == nil {
		s.warn(fmt.Errorf("%w: no provider configured", translator.ErrUnavailable))
		return ""
	}

	translated, err := s.provider.Translate(ctx, sourceText, s.sourceLang, s.targetLang)
	if err != nil {
		if !errors.Is(err, translator.ErrUnavailable) {
			err = fmt.Errorf("%w: %s", translator.ErrUnavailable, err)
		}
		s.warn(fmt.Errorf("translating %q: %w", key, err))
		return ""
	}
	return translated
}

func (s *Session) warn(err error) {
	if s.onWarning != nil {
		s.onWarning(err)
	}
}

// RenameEntry moves the values stored under key in both dictionaries to
// newKey, removing the old key. Existing values at newKey are overwritten.
// Returns ErrKeyNotFound when key exists in neither dictionary; the new key
// is validated before any mutation.
func (s *Session) RenameEntry(key, newKey string) (Entry, error) {
	if err := dictionary.ValidateKey(newKey); err != nil {
		return Entry{}, err
	}

	sourceText, inSource := s.source.Get(key)
	targetText, inTarget := s.target.Get(key)
	if !inSource && !inTarget {
		return Entry{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	s.source.Delete(key)
	s.target.Delete(key)
	if inSource {
		_ = s.source.Set(newKey, sourceText)
	}
	if inTarget {
		_ = s.target.Set(newKey, targetText)
	}

	s.log.Debug("entry renamed", slog.String("from", key), slog.String("to", newKey))
	return Entry{Key: newKey, Source: sourceText, Target: targetText}, nil
}

// DeleteEntry removes key and its whole subtree (key plus every "key.*"
// descendant) from both dictionaries. Returns the number of distinct keys
// removed, or ErrKeyNotFound when nothing matched.
func (s *Session) DeleteEntry(key string) (int, error) {
	removed := s.source.DeleteSubtree(key)
	if n := s.target.DeleteSubtree(key); n > removed {
		removed = n
	}
	if removed == 0 {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	s.log.Debug("entry deleted", slog.String("key", key), slog.Int("removed", removed))
	return removed, nil
}

// Lookup returns the joined entry for key and whether the key exists in
// either dictionary.
func (s *Session) Lookup(key string) (Entry, bool) {
	sourceText, inSource := s.source.Get(key)
	targetText, inTarget := s.target.Get(key)
	if !inSource && !inTarget {
		return Entry{}, false
	}
	return Entry{Key: key, Source: sourceText, Target: targetText}, true
}

// Entries returns the union of both dictionaries joined on key: source
// dictionary order first, then target-only keys in target order. Blank
// values mark missing translations.
func (s *Session) Entries() []Entry {
	entries := make([]Entry, 0, s.source.Len())
	for _, key := range s.source.Keys() {
		sourceText, _ := s.source.Get(key)
		targetText, _ := s.target.Get(key)
		entries = append(entries, Entry{Key: key, Source: sourceText, Target: targetText})
	}
	for _, key := range s.target.Keys() {
		if s.source.Has(key) {
			continue
		}
		targetText, _ := s.target.Get(key)
		entries = append(entries, Entry{Key: key, Target: targetText})
	}
	return entries
}

// Save writes both dictionaries back to their files, source first. An error
// on either file aborts and surfaces; the in-memory state stays intact so
// the user can retry.
func (s *Session) Save() error {
	if err := dictionary.Save(s.pair.SourcePath, s.source); err != nil {
		return err
	}
	if err := dictionary.Save(s.pair.TargetPath, s.target); err != nil {
		return err
	}
	s.snapshot()

	s.log.Info("session saved",
		slog.String("source", s.pair.SourcePath),
		slog.String("target", s.pair.TargetPath),
	)
	return nil
}

func (s *Session) snapshot() {
	s.savedSource = s.source.Clone()
	s.savedTarget = s.target.Clone()
}

// Dirty reports whether in-memory state diverged from the files since the
// last load or save. An edit that restores the saved state (e.g. deleting
// a freshly added key) leaves the session clean again.
func (s *Session) Dirty() bool {
	return !s.source.Equal(s.savedSource) || !s.target.Equal(s.savedTarget)
}

// Files returns the file pair backing this session.
func (s *Session) Files() FilePair {
	return s.pair
}

// Languages returns the source and target language codes.
func (s *Session) Languages() (source, target string) {
	return s.sourceLang, s.targetLang
}
