package cli

import (
    "fmt"
    "os"
    "time"

    "github.com/spf13/cobra"

    "swim/internal/app"
)

var flags struct {
    backend string
    path    string
    tick    time.Duration
}

var rootCmd = &cobra.Command{
    Use:   "swim",
    Short: "swim – four-pane text shell with an editor and a script runner",
    Long:  "swim opens four panes that each browse, edit or run the small programs kept in its file store.",
    RunE: func(cmd *cobra.Command, args []string) error {
        // Default action: launch the TUI
        return app.Start(overrides())
    },
    SilenceUsage:  true,
    SilenceErrors: true,
}

func init() {
    pf := rootCmd.PersistentFlags()
    pf.StringVar(&flags.backend, "backend", "", "storage backend: memory, sqlite or dir")
    pf.StringVar(&flags.path, "path", "", "sqlite database or directory for the store")
    pf.DurationVar(&flags.tick, "tick", 0, "scheduler tick interval")
}

func overrides() app.Overrides {
    return app.Overrides{Backend: flags.backend, Path: flags.path, Tick: flags.tick}
}

// openStore loads the effective config and opens its store.
func openStore() (app.Store, error) {
    cfg, err := app.LoadConfig(overrides())
    if err != nil {
        return app.Store{}, err
    }
    return app.OpenStore(cfg)
}

// Execute runs the CLI.
func Execute() {
    if err := rootCmd.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}
