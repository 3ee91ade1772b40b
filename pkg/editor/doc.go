// Package editor implements an editing session over a pair of translation
// dictionaries, one per language.
//
// A Session owns the source and target dictionaries for the whole edit
// cycle: load both files, merge new or changed entries, optionally auto-fill
// missing target values through a machine-translation provider, and write
// both files back. All state is explicit — nothing lives in package
// globals — so sessions are fully testable without any user interface.
//
//	session, err := editor.NewSession(editor.FilePair{
//		SourcePath: "locales/pl.json",
//		TargetPath: "locales/en.json",
//	},
//		editor.WithProvider(deepl.New(cfg)),
//		editor.WithLanguages("pl", "en-GB"),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	entry, err := session.AddEntry(ctx, "header.welcome", "Witaj", "", true)
//	if err != nil {
//		// invalid key or empty source text; nothing was changed
//	}
//
//	if err := session.Save(); err != nil {
//		// handle error
//	}
//
// # Degraded Translation
//
// Provider failures never fail AddEntry. When the provider is missing or a
// call errors out, the target value stays empty, the warning handler
// receives an error wrapping translator.ErrUnavailable, and the entry is
// merged anyway. The user fills the gap manually later.
//
// # Atomicity
//
// AddEntry and RenameEntry validate before mutating: on error, neither
// dictionary changes. On success, both change.
//
// Session is not safe for concurrent use; there is exactly one editing
// session per process, driven from a single goroutine.
package editor
