package commands

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"telegraph/internal/render/audio"
)

// play [text...]: key the message through the audio device.
func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [text...]",
		Short: "Key a message through the audio device",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := messageText(args)
			if err != nil {
				return err
			}
			encoded, err := wire.Encoder.Encode(msg)
			if err != nil {
				return err
			}

			player, err := audio.NewPlayer(wire.ToneConfig())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			slog.Debug("playing message",
				"symbols", len(encoded),
				"duration", time.Duration(encoded.Units())*wire.ToneConfig().Unit(),
			)
			if err := player.Render(ctx, encoded); err != nil {
				// Ctrl-C mid-transmission is a stop, not a failure.
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "read the message from a file")
	return cmd
}
