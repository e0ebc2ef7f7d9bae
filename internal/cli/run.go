package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"swim/internal/interp"
	"swim/internal/script"
	"swim/internal/storage"
	"swim/internal/system"
)

var runMaxTicks int

func init() {
	runCmd.Flags().IntVar(&runMaxTicks, "max-ticks", 0, "stop after this many ticks (0 = no limit)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run a stored script without the screen, answering input from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the program's output only
		system.Discard()
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		src, err := storage.ReadFile(st.FS, args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if !utf8.Valid(src) {
			return fmt.Errorf("%s: not a text file", args[0])
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		sess := script.New(args[0], interp.New(string(src)))
		return script.Drive(ctx, sess, cmd.InOrStdin(), cmd.OutOrStdout(), runMaxTicks)
	},
}
