package root

import (
	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/spf13/cobra"
)

var protocolWidth int

const protocolDoc = "# mcphello wire protocol\n\n" +
	"One JSON object per line on stdin, one JSON object per line on stdout.\n\n" +
	"## Startup\n\n" +
	"The first line written is always the ready event: `{\"type\":\"ready\",\"version\":\"0.1.0\"}`\n\n" +
	"## Requests\n\n" +
	"`{\"id\":1,\"method\":\"hello\",\"params\":{\"name\":\"Alice\"}}`\n\n" +
	"- `ping` answers `{\"message\":\"pong\"}`\n" +
	"- `hello` answers `{\"message\":\"Hello, <name>!\"}`, greeting `world` when no name is given\n\n" +
	"Blank lines are ignored.\n\n" +
	"## Errors\n\n" +
	"- `invalid-json`: the line is not a JSON object; the response has no `id`\n" +
	"- `method-not-found`: the method is not `ping` or `hello`\n\n" +
	"Errors never stop the server. It exits when stdin closes or on interrupt.\n"

var protocolCmd = &cobra.Command{
	Use:   "protocol",
	Short: "Describe the wire protocol",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := markdown.Render(protocolDoc, protocolWidth, 2)
		_, err := cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(protocolCmd)
	protocolCmd.Flags().IntVar(&protocolWidth, "width", 80, "Line width used when rendering")
}
