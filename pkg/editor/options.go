package editor

import (
	"log/slog"

	"github.com/dmitrymomot/polyglot/pkg/translator"
)

// Option configures a Session during construction.
type Option func(*Session)

// WithProvider sets the machine-translation provider used to auto-fill
// missing target values. Without a provider, auto-translate requests
// degrade to manual entry.
func WithProvider(p translator.Provider) Option {
	return func(s *Session) {
		s.provider = p
	}
}

// WithLanguages sets the source and target language codes passed to the
// provider. Defaults: "pl" and "en-GB".
func WithLanguages(source, target string) Option {
	return func(s *Session) {
		if source != "" {
			s.sourceLang = source
		}
		if target != "" {
			s.targetLang = target
		}
	}
}

// WithLogger sets the session logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithWarningHandler sets a handler for non-fatal warnings, currently only
// translation unavailability. The default handler logs at warn level.
func WithWarningHandler(fn func(error)) Option {
	return func(s *Session) {
		s.onWarning = fn
	}
}

// WithCreateMissing starts with an empty dictionary when a translation file
// does not exist yet, instead of failing the session load. Useful when
// adding a new language file to a project.
func WithCreateMissing() Option {
	return func(s *Session) {
		s.createMissing = true
	}
}
