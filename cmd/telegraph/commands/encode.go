package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"telegraph/internal/render/text"
)

// encode [text...]: print the textual dot/dash representation.
func encodeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Print the dot/dash representation of a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := messageText(args)
			if err != nil {
				return err
			}

			// Validate the format before encoding so an unsupported format
			// never produces partial output.
			w, err := text.NewWriter(os.Stdout, format)
			if err != nil {
				return err
			}

			encoded, err := wire.Encoder.Encode(msg)
			if err != nil {
				return err
			}
			slog.Debug("encoded message", "chars", len(msg), "symbols", len(encoded))

			if err := w.Render(cmd.Context(), encoded); err != nil {
				return err
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", text.FormatPlain, "output format (plain, spoken, block)")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "read the message from a file")
	return cmd
}
