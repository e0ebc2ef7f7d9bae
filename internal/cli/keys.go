package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

const keysDoc = `# swim keys

| Key | Files | Editor | Script |
|---|---|---|---|
| F1-F4 | focus pane | focus pane | focus pane |
| F5 | new file name | new file name | new file name |
| F6 | - | save and close | stop and close |
| e | edit selected | type | type |
| r | run selected | type | type |
| arrows | move selection | move cursor | - |
| Enter | - | split line | send input line |
| Backspace | - | join or delete | - |
| ctrl+c | quit | quit | quit |

While the filename bar is active, typed characters go to the bar,
**Enter** creates the file and **Backspace** deletes the last character.
Names are 1 to 10 bytes.
`

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(78),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(keysDoc)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
