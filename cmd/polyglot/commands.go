package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/polyglot/internal/server"
	"github.com/dmitrymomot/polyglot/pkg/editor"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all translation entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _, err := openSession(flags)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			sourceLang, targetLang := session.Languages()
			fmt.Fprintf(w, "KEY\t%s\t%s\n", sourceLang, targetLang)
			for _, entry := range session.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Key, entry.Source, entry.Target)
			}
			return w.Flush()
		},
	}
}

func newAddCmd(flags *rootFlags) *cobra.Command {
	var translate bool

	cmd := &cobra.Command{
		Use:   "add KEY SOURCE [TARGET]",
		Short: "Add or overwrite a translation entry in both files",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := openSession(flags)
			if err != nil {
				return err
			}

			target := ""
			if len(args) == 3 {
				target = args[2]
			}

			entry, err := session.AddEntry(cmd.Context(), args[0], args[1], target, translate)
			if err != nil {
				return err
			}
			if err := session.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n  source: %s\n  target: %s\n", entry.Key, entry.Source, entry.Target)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&translate, "translate", "t", false, "auto-translate the target value when omitted")
	return cmd
}

func newMvCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mv OLD_KEY NEW_KEY",
		Short: "Rename a translation key in both files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := openSession(flags)
			if err != nil {
				return err
			}

			entry, err := session.RenameEntry(args[0], args[1])
			if err != nil {
				return err
			}
			if err := session.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], entry.Key)
			return nil
		},
	}
}

func newRmCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm KEY",
		Short: "Remove a translation key and its subtree from both files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := openSession(flags)
			if err != nil {
				return err
			}

			removed, err := session.DeleteEntry(args[0])
			if err != nil {
				return err
			}
			if err := session.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d key(s)\n", removed)
			return nil
		},
	}
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editing session over a localhost HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(flags.verbose)
			rec := server.NewWarningRecorder()

			session, cfg, err := openSession(flags, editor.WithWarningHandler(rec.Record))
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
			}

			srv := server.New(session,
				server.WithLogger(log),
				server.WithAddr(addr),
				server.WithWarningRecorder(rec),
			)

			fmt.Fprintf(os.Stderr, "serving editing API on http://%s\n", addr)
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from POLYGLOT_ADDR)")
	return cmd
}
