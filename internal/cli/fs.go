package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"swim/internal/storage"
)

var fsMatch string

func init() {
	fsLsCmd.Flags().StringVarP(&fsMatch, "match", "m", "", "fuzzy filter, best match first")
	fsCmd.AddCommand(fsLsCmd, fsCatCmd, fsPutCmd, fsSeedCmd)
	rootCmd.AddCommand(fsCmd)
}

var fsCmd = &cobra.Command{
	Use:   "fs",
	Short: "Inspect and fill the file store",
}

var fsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stored files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		names, err := st.FS.ListDirectory()
		if err != nil {
			return err
		}
		for _, n := range matchNames(fsMatch, names) {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

// matchNames ranks names against pattern. An empty pattern keeps them all.
func matchNames(pattern string, names []string) []string {
	if pattern == "" {
		return names
	}
	matches := fuzzy.Find(pattern, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

var fsCatCmd = &cobra.Command{
	Use:   "cat <name>",
	Short: "Print a stored file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		b, err := storage.ReadFile(st.FS, args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

var fsPutCmd = &cobra.Command{
	Use:   "put <name> <hostfile>",
	Short: "Copy a host file into the store (\"-\" reads stdin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			b   []byte
			err error
		)
		if args[1] == "-" {
			b, err = io.ReadAll(cmd.InOrStdin())
		} else {
			b, err = os.ReadFile(args[1])
		}
		if err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := storage.WriteFile(st.FS, args[0], b); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%d bytes)\n", args[0], len(b))
		return nil
	},
}

var fsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the example programs into an empty store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		seeded, err := storage.Seed(st.FS)
		if err != nil {
			return err
		}
		if seeded {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ wrote %d example programs\n", len(storage.Examples))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "store is not empty, nothing written")
		}
		return nil
	},
}
