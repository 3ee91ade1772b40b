package editor_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/dictionary"
	"github.com/dmitrymomot/polyglot/pkg/editor"
	"github.com/dmitrymomot/polyglot/pkg/translator"
)

func writePair(t *testing.T, sourceJSON, targetJSON string) editor.FilePair {
	t.Helper()
	dir := t.TempDir()
	pair := editor.FilePair{
		SourcePath: filepath.Join(dir, "pl.json"),
		TargetPath: filepath.Join(dir, "en.json"),
	}
	require.NoError(t, os.WriteFile(pair.SourcePath, []byte(sourceJSON), 0o644))
	require.NoError(t, os.WriteFile(pair.TargetPath, []byte(targetJSON), 0o644))
	return pair
}

// echoProvider translates by suffixing the source text, so tests can tell
// machine-filled values from manual ones.
var echoProvider = translator.Func(func(_ context.Context, text, _, _ string) (string, error) {
	return text + " (translated)", nil
})

var downProvider = translator.Func(func(context.Context, string, string, string) (string, error) {
	return "", translator.ErrUnavailable
})

func TestNewSession(t *testing.T) {
	t.Parallel()

	t.Run("loads both dictionaries", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"a": {"b": "czesc"}}`, `{"a": {"b": "hello"}}`)

		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		entry, ok := session.Lookup("a.b")
		require.True(t, ok)
		require.Equal(t, editor.Entry{Key: "a.b", Source: "czesc", Target: "hello"}, entry)
		require.False(t, session.Dirty())
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		t.Parallel()
		pair := editor.FilePair{
			SourcePath: filepath.Join(t.TempDir(), "pl.json"),
			TargetPath: filepath.Join(t.TempDir(), "en.json"),
		}
		_, err := editor.NewSession(pair)
		require.ErrorIs(t, err, dictionary.ErrNotFound)
	})

	t.Run("starts empty with WithCreateMissing", func(t *testing.T) {
		t.Parallel()
		pair := editor.FilePair{
			SourcePath: filepath.Join(t.TempDir(), "pl.json"),
			TargetPath: filepath.Join(t.TempDir(), "en.json"),
		}
		session, err := editor.NewSession(pair, editor.WithCreateMissing())
		require.NoError(t, err)
		require.Empty(t, session.Entries())
	})

	t.Run("fails on malformed files", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{broken`, `{}`)
		_, err := editor.NewSession(pair)
		require.ErrorIs(t, err, dictionary.ErrParse)
	})
}

func TestAddEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("merges into both dictionaries", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		entry, err := session.AddEntry(ctx, "header.welcome", "Witaj", "Welcome", false)
		require.NoError(t, err)
		require.Equal(t, editor.Entry{Key: "header.welcome", Source: "Witaj", Target: "Welcome"}, entry)

		got, ok := session.Lookup("header.welcome")
		require.True(t, ok)
		require.Equal(t, entry, got)
		require.True(t, session.Dirty())
	})

	t.Run("overwrites an existing key instead of duplicating", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"a": "old"}`, `{"a": "old"}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.AddEntry(ctx, "a", "new-pl", "new-en", false)
		require.NoError(t, err)

		entries := session.Entries()
		require.Len(t, entries, 1)
		require.Equal(t, editor.Entry{Key: "a", Source: "new-pl", Target: "new-en"}, entries[0])
	})

	t.Run("rejects an empty key without mutating", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"a": "x"}`, `{"a": "y"}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.AddEntry(ctx, "", "x", "y", false)
		require.ErrorIs(t, err, dictionary.ErrInvalidKey)
		require.Len(t, session.Entries(), 1)
		require.False(t, session.Dirty())
	})

	t.Run("rejects empty source text", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.AddEntry(ctx, "a.b", "", "", false)
		require.ErrorIs(t, err, editor.ErrEmptySourceText)
		require.Empty(t, session.Entries())
	})

	t.Run("auto-translates a missing target value", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)
		session, err := editor.NewSession(pair, editor.WithProvider(echoProvider))
		require.NoError(t, err)

		entry, err := session.AddEntry(ctx, "a.b", "Cześć", "", true)
		require.NoError(t, err)
		require.Equal(t, "Cześć (translated)", entry.Target)
	})

	t.Run("keeps a manual target value over auto-translate", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)
		session, err := editor.NewSession(pair, editor.WithProvider(echoProvider))
		require.NoError(t, err)

		entry, err := session.AddEntry(ctx, "a.b", "Cześć", "Hi there", true)
		require.NoError(t, err)
		require.Equal(t, "Hi there", entry.Target)
	})

	t.Run("degrades to manual entry without a provider", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)

		var warning error
		session, err := editor.NewSession(pair,
			editor.WithWarningHandler(func(err error) { warning = err }),
		)
		require.NoError(t, err)

		entry, err := session.AddEntry(ctx, "a.b", "Cześć", "", true)
		require.NoError(t, err, "translation unavailability must not fail the merge")
		require.Empty(t, entry.Target)
		require.ErrorIs(t, warning, translator.ErrUnavailable)

		got, ok := session.Lookup("a.b")
		require.True(t, ok)
		assert.Equal(t, "Cześć", got.Source)
		assert.Empty(t, got.Target)
	})

	t.Run("degrades when the provider fails", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)

		var warning error
		session, err := editor.NewSession(pair,
			editor.WithProvider(downProvider),
			editor.WithWarningHandler(func(err error) { warning = err }),
		)
		require.NoError(t, err)

		entry, err := session.AddEntry(ctx, "a.b", "Cześć", "", true)
		require.NoError(t, err)
		require.Empty(t, entry.Target)
		require.ErrorIs(t, warning, translator.ErrUnavailable)
	})

	t.Run("wraps unexpected provider errors as unavailable", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)

		var warning error
		broken := translator.Func(func(context.Context, string, string, string) (string, error) {
			return "", errors.New("boom")
		})
		session, err := editor.NewSession(pair,
			editor.WithProvider(broken),
			editor.WithWarningHandler(func(err error) { warning = err }),
		)
		require.NoError(t, err)

		_, err = session.AddEntry(ctx, "a.b", "Cześć", "", true)
		require.NoError(t, err)
		require.ErrorIs(t, warning, translator.ErrUnavailable)
	})

	t.Run("skips the provider when auto-translate is off", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)

		called := false
		spy := translator.Func(func(context.Context, string, string, string) (string, error) {
			called = true
			return "nope", nil
		})
		session, err := editor.NewSession(pair, editor.WithProvider(spy))
		require.NoError(t, err)

		entry, err := session.AddEntry(ctx, "a.b", "Cześć", "", false)
		require.NoError(t, err)
		require.Empty(t, entry.Target)
		require.False(t, called)
	})
}

func TestRenameEntry(t *testing.T) {
	t.Parallel()

	t.Run("moves both values to the new key", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"foo": {"bar": "PL_old"}}`, `{"foo": {"bar": "EN_old"}}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		entry, err := session.RenameEntry("foo.bar", "alpha.beta")
		require.NoError(t, err)
		require.Equal(t, editor.Entry{Key: "alpha.beta", Source: "PL_old", Target: "EN_old"}, entry)

		_, ok := session.Lookup("foo.bar")
		require.False(t, ok)
		got, ok := session.Lookup("alpha.beta")
		require.True(t, ok)
		require.Equal(t, entry, got)
	})

	t.Run("moves a partially translated key", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"only": "pl"}`, `{}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		entry, err := session.RenameEntry("only", "moved")
		require.NoError(t, err)
		require.Equal(t, "pl", entry.Source)
		require.Empty(t, entry.Target)

		got, ok := session.Lookup("moved")
		require.True(t, ok)
		require.Equal(t, "pl", got.Source)
	})

	t.Run("rejects an invalid new key without mutating", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"a": "x"}`, `{"a": "y"}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.RenameEntry("a", "bad..key")
		require.ErrorIs(t, err, dictionary.ErrInvalidKey)

		_, ok := session.Lookup("a")
		require.True(t, ok)
	})

	t.Run("fails for a missing key", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.RenameEntry("ghost", "real")
		require.ErrorIs(t, err, editor.ErrKeyNotFound)
	})
}

func TestDeleteEntry(t *testing.T) {
	t.Parallel()

	t.Run("removes the subtree from both dictionaries", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t,
			`{"menu": {"file": "Plik", "edit": "Edycja"}, "other": "Inne"}`,
			`{"menu": {"file": "File"}}`,
		)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		removed, err := session.DeleteEntry("menu")
		require.NoError(t, err)
		require.Equal(t, 2, removed)

		_, ok := session.Lookup("menu.file")
		require.False(t, ok)
		_, ok = session.Lookup("other")
		require.True(t, ok)
	})

	t.Run("fails for a missing key", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.DeleteEntry("ghost")
		require.ErrorIs(t, err, editor.ErrKeyNotFound)
	})
}

func TestEntries(t *testing.T) {
	t.Parallel()

	t.Run("joins both dictionaries on key", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t,
			`{"both": "pl", "source_only": "tylko"}`,
			`{"both": "en", "target_only": "only"}`,
		)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		require.Equal(t, []editor.Entry{
			{Key: "both", Source: "pl", Target: "en"},
			{Key: "source_only", Source: "tylko"},
			{Key: "target_only", Target: "only"},
		}, session.Entries())
	})
}

func TestDirty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("tracks divergence from the saved state", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"a": "x"}`, `{"a": "y"}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)
		require.False(t, session.Dirty())

		_, err = session.AddEntry(ctx, "b", "new", "new", false)
		require.NoError(t, err)
		require.True(t, session.Dirty())
	})

	t.Run("clears when an edit is reverted", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"a": "x"}`, `{"a": "y"}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.AddEntry(ctx, "b", "new", "new", false)
		require.NoError(t, err)
		_, err = session.DeleteEntry("b")
		require.NoError(t, err)

		require.False(t, session.Dirty(), "state matches the files again")
	})

	t.Run("overwriting with the same values stays clean", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"a": "x"}`, `{"a": "y"}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.AddEntry(ctx, "a", "x", "y", false)
		require.NoError(t, err)
		require.False(t, session.Dirty())
	})
}

func TestSave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes both files and clears the dirty flag", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{}`, `{}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.AddEntry(ctx, "a.b", "Cześć", "Hello", false)
		require.NoError(t, err)
		require.True(t, session.Dirty())

		require.NoError(t, session.Save())
		require.False(t, session.Dirty())

		source, err := dictionary.Load(pair.SourcePath)
		require.NoError(t, err)
		v, _ := source.Get("a.b")
		require.Equal(t, "Cześć", v)

		target, err := dictionary.Load(pair.TargetPath)
		require.NoError(t, err)
		v, _ = target.Get("a.b")
		require.Equal(t, "Hello", v)
	})

	t.Run("surfaces key conflicts", func(t *testing.T) {
		t.Parallel()
		pair := writePair(t, `{"a": "scalar"}`, `{}`)
		session, err := editor.NewSession(pair)
		require.NoError(t, err)

		_, err = session.AddEntry(ctx, "a.b", "nested", "nested", false)
		require.NoError(t, err)

		err = session.Save()
		require.ErrorIs(t, err, dictionary.ErrKeyConflict)
		require.True(t, session.Dirty(), "failed save must keep the session dirty")
	})
}
