package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/polyglot/internal/config"
	"github.com/dmitrymomot/polyglot/pkg/editor"
	"github.com/dmitrymomot/polyglot/pkg/translator/deepl"
)

// rootFlags carry the global file-pair overrides shared by all commands.
type rootFlags struct {
	sourceFile string
	targetFile string
	create     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "polyglot",
		Short: "Edit paired translation files with optional auto-translation",
		Long: `Polyglot edits two translation files side by side: one for the source
language and one for the target. New entries merge into both files; missing
target values can be filled by the DeepL API when DEEPL_API_KEY is set.

File paths are remembered in ~/.polyglot.json between runs, so --source and
--target are only needed the first time or when switching projects.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.sourceFile, "source", "", "source-language translation file")
	cmd.PersistentFlags().StringVar(&flags.targetFile, "target", "", "target-language translation file")
	cmd.PersistentFlags().BoolVar(&flags.create, "create", false, "start missing translation files as empty")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newListCmd(flags),
		newAddCmd(flags),
		newMvCmd(flags),
		newRmCmd(flags),
		newServeCmd(flags),
	)
	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolvePair merges flag overrides with the remembered state and persists
// the result, so the next run can omit the flags.
func resolvePair(flags *rootFlags) (editor.FilePair, error) {
	statePath, err := config.DefaultStatePath()
	if err != nil {
		return editor.FilePair{}, err
	}
	st := config.LoadState(statePath)

	if flags.sourceFile != "" {
		st.SourceFile = flags.sourceFile
	}
	if flags.targetFile != "" {
		st.TargetFile = flags.targetFile
	}
	if st.SourceFile == "" || st.TargetFile == "" {
		return editor.FilePair{}, fmt.Errorf("no translation files configured: pass --source and --target once")
	}
	// A remembered file may have moved since the last run; re-prompt for
	// paths instead of failing deeper in the session load.
	if !flags.create && !st.Complete() {
		return editor.FilePair{}, fmt.Errorf("translation files not found (%s, %s): pass --source/--target again, or --create to start them empty", st.SourceFile, st.TargetFile)
	}

	if err := config.SaveState(statePath, st); err != nil {
		return editor.FilePair{}, err
	}
	return editor.FilePair{SourcePath: st.SourceFile, TargetPath: st.TargetFile}, nil
}

// openSession wires config, provider, and warning output into a session.
// Warnings go to stderr; they never fail a command.
func openSession(flags *rootFlags, extraOpts ...editor.Option) (*editor.Session, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}

	pair, err := resolvePair(flags)
	if err != nil {
		return nil, config.Config{}, err
	}

	opts := []editor.Option{
		editor.WithLanguages(cfg.SourceLang, cfg.TargetLang),
		editor.WithLogger(newLogger(flags.verbose)),
		editor.WithWarningHandler(func(err error) {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}),
	}
	if client := deepl.New(cfg.DeepL); client.Enabled() {
		opts = append(opts, editor.WithProvider(client))
	}
	if flags.create {
		opts = append(opts, editor.WithCreateMissing())
	}
	opts = append(opts, extraOpts...)

	session, err := editor.NewSession(pair, opts...)
	if err != nil {
		return nil, config.Config{}, err
	}
	return session, cfg, nil
}
