// Package commands implements the appdir command-line tool.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/appdir"
)

// NewRootCmd builds the appdir command tree. base is applied before the
// options derived from flags, which lets tests inject a filesystem and
// fixed roots.
func NewRootCmd(base ...appdir.Option) *cobra.Command {
	var (
		dir     string
		verbose bool
	)

	options := func(cmd *cobra.Command) []appdir.Option {
		opts := append([]appdir.Option{}, base...)
		if verbose {
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
			opts = append(opts, appdir.WithLogger(slog.New(handler)))
		}
		return opts
	}
	directory := func(cmd *cobra.Command) (*appdir.Directory, error) {
		loc, err := appdir.ParseLocation(dir)
		if err != nil {
			return nil, err
		}
		return appdir.NewDirectory(loc, options(cmd)...)
	}

	root := &cobra.Command{
		Use:   "appdir",
		Short: "Inspect and manage files in per-user application directories",
		Long: `appdir works with files in four per-user locations: Documents, Inbox
(Documents/Inbox), Library and tmp.

Base directories come from the platform and can be overridden with
APPDIR_DOCUMENTS_DIR, APPDIR_LIBRARY_DIR and APPDIR_TEMP_DIR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&dir, "dir", "d", "documents", "Location to operate on (documents|inbox|library|tmp)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log file operations to stderr")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newPathsCmd(options),
		newLsCmd(directory),
		newCatCmd(directory),
		newWriteCmd(directory),
		newRmCmd(directory),
		newMvCmd(directory),
		newCpCmd(directory),
		newRenameCmd(directory),
		newExtCmd(directory),
		newStatCmd(directory),
		newGlobCmd(directory),
	)
	return root
}

// Execute runs the appdir command against the local filesystem.
func Execute() error {
	return NewRootCmd().Execute()
}

type (
	optionsFunc   func(*cobra.Command) []appdir.Option
	directoryFunc func(*cobra.Command) (*appdir.Directory, error)
)
