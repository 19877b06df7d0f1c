package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"telegraph/internal/render/audio"
)

// write <output> [text...]: render the message into an audio file.
func writeCmd() *cobra.Command {
	var (
		format   string
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "write <output> [text...]",
		Short: "Render a message into an audio file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := args[0]
			msg, err := messageText(args[1:])
			if err != nil {
				return err
			}

			if format == "" {
				format = wire.Config.Audio.Format
			}
			if encoding == "" {
				encoding = wire.Config.Audio.Encoding
			}

			// Validate the format/encoding pair before encoding the message,
			// so a bad pair fails without touching the filesystem.
			w, err := audio.NewFileWriter(out, format, encoding, wire.ToneConfig())
			if err != nil {
				return err
			}

			encoded, err := wire.Encoder.Encode(msg)
			if err != nil {
				return err
			}
			if err := w.Render(cmd.Context(), encoded); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "audio-format", "", "audio container format (default from config)")
	cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "audio encoding (default from config)")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "read the message from a file")
	return cmd
}
