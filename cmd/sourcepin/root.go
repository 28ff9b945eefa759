// Command sourcepin fetches trust-verified, version-pinned snapshots of
// remote repositories and digests their file trees for reproducibility.
package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sourcepin/sourcepin/snapshot"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "sourcepin",
		Short:         "Fetch and pin verified source snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts := log.Options{ReportTimestamp: true}
			if verbose {
				opts.Level = log.DebugLevel
			}
			slog.SetDefault(slog.New(log.NewWithOptions(os.Stderr, opts)))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newTagsCmd())
	cmd.AddCommand(newHashCmd())
	cmd.AddCommand(newVerifyCmd())

	return cmd
}

func newService() *snapshot.Service {
	return snapshot.NewService(snapshot.WithLogger(slog.Default()))
}
