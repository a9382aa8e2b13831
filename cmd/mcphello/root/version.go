package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcphello/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "mcphello %s\n", version.Resolve())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
