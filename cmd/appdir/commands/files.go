package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/appdir"
	apperrors "github.com/jmgilman/go/appdir/errors"
)

func newPathsCmd(options optionsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show the resolved path of every location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := appdir.NewResolver(options(cmd)...)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(appdir.Locations()))
			for _, loc := range appdir.Locations() {
				path, err := r.Resolve(loc)
				if err != nil {
					return err
				}
				rows = append(rows, []string{loc.String(), path})
			}
			printTable(cmd.OutOrStdout(), []string{"Location", "Path"}, rows)
			return nil
		},
	}
}

func newLsCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List the entries of the location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			names, err := d.Entries()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newCatCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "cat NAME",
		Short: "Print a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			text, err := d.Read(args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newWriteCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "write NAME [TEXT]",
		Short: "Write TEXT, or standard input, to a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}

			var text string
			if len(args) == 2 {
				text = args[1]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return apperrors.Wrap(err, apperrors.CodeIO, "failed to read standard input")
				}
				text = string(data)
			}
			return d.Write(text, args[0])
		},
	}
}

func newRmCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			return d.Delete(args[0])
		},
	}
}

func newMvCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "mv NAME LOCATION",
		Short: "Move a file to another location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			to, err := appdir.ParseLocation(args[1])
			if err != nil {
				return err
			}
			return d.MoveTo(args[0], to)
		},
	}
}

func newCpCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "cp NAME LOCATION",
		Short: "Copy a file to another location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			to, err := appdir.ParseLocation(args[1])
			if err != nil {
				return err
			}
			return d.CopyTo(args[0], to)
		},
	}
}

func newRenameCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a file within the location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			return d.Rename(args[0], args[1])
		},
	}
}

func newExtCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "ext NAME EXT",
		Short: "Change the extension of a file and print its new name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			name, err := d.ChangeExtension(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newStatCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stat NAME",
		Short: "Show the attributes of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			attrs, err := d.Attributes(args[0])
			if err != nil {
				return err
			}

			pairs := make([][2]string, 0, len(attrs))
			for _, key := range attrs.Keys() {
				pairs = append(pairs, [2]string{string(key), attrs.Format(key)})
			}
			printPairs(cmd.OutOrStdout(), pairs)
			return nil
		},
	}
}

func newGlobCmd(directory directoryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "glob PATTERN",
		Short: "List paths in the location matching a pattern",
		Long:  `Patterns support "**" to match any number of directories, e.g. "**/*.md".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := directory(cmd)
			if err != nil {
				return err
			}
			matches, err := d.Glob(args[0])
			if err != nil {
				return err
			}
			if len(matches) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(matches, "\n"))
			}
			return nil
		},
	}
}
