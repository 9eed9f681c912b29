package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/npillmayer/ostree"
	"github.com/npillmayer/ostree/console"
)

const (
	dumpCmdUse   = "dump [keys...]"
	dumpCmdShort = "Build a tree from integer keys and print its structure"
)

// NewDumpCommand creates the dump subcommand.
func NewDumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   dumpCmdUse,
		Short: dumpCmdShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			var settings DumpSettings

			loadErr := loadSettings(cmd, &settings)
			if loadErr != nil {
				return loadErr
			}

			tree, err := buildTree(args, settings.Delete)
			if err != nil {
				return err
			}

			return runDump(cmd.OutOrStdout(), tree, settings)
		},
	}

	cmd.Flags().StringSlice("delete", nil, "keys to delete after all keys have been inserted")
	cmd.Flags().Bool("dot", false, "output Graphviz DOT instead of a console dump")
	cmd.Flags().Bool("sizes", false, "show subtree sizes in the console dump")

	return cmd
}

func buildTree(inserts, deletes []string) (*ostree.Tree[int], error) {
	tree := ostree.NewOrdered[int]()

	for _, arg := range inserts {
		k, err := parseKey(arg)
		if err != nil {
			return nil, err
		}

		tree.Insert(k)
	}

	for _, arg := range deletes {
		k, err := parseKey(arg)
		if err != nil {
			return nil, err
		}

		deleteErr := tree.Delete(k)
		if deleteErr != nil {
			return nil, fmt.Errorf("delete: %w", deleteErr)
		}
	}

	checkErr := tree.Check()
	if checkErr != nil {
		return nil, checkErr
	}

	return tree, nil
}

func parseKey(arg string) (int, error) {
	k, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("key %q is not an integer: %w", arg, err)
	}

	return k, nil
}

func runDump(w io.Writer, tree *ostree.Tree[int], settings DumpSettings) error {
	if settings.Dot {
		return tree.Tree2Dot(w)
	}

	config := console.ConfigFromTerminal()
	config.ShowSize = settings.Sizes

	printErr := console.Print(w, tree, config)
	if printErr != nil {
		return fmt.Errorf("print tree: %w", printErr)
	}

	_, err := fmt.Fprintf(w, "size %d, black height %d\n", tree.Size(), tree.BlackHeight())

	return err
}
