package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"telegraph/internal/app"
	"telegraph/internal/config"
)

var (
	configFile string
	alphaName  string
	wpm        int
	frequency  float64
	verbose    bool

	inputFile string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "telegraph",
		Short:         "Convert text to Morse code pulses",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			// Flags override file and environment settings.
			if cmd.Flags().Changed("alphabet") {
				cfg.Alphabet = alphaName
			}
			if cmd.Flags().Changed("wpm") {
				cfg.Audio.WPM = wpm
			}
			if cmd.Flags().Changed("frequency") {
				cfg.Audio.Frequency = frequency
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}
			config.SetupLogging(cfg.Logging)

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default telegraph.yaml)")
	root.PersistentFlags().StringVar(&alphaName, "alphabet", "international", "morse alphabet to encode with")
	root.PersistentFlags().IntVar(&wpm, "wpm", 0, "keying speed in words per minute")
	root.PersistentFlags().Float64Var(&frequency, "frequency", 0, "tone frequency in Hz")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(encodeCmd(), playCmd(), writeCmd(), formatsCmd())
	return root.Execute()
}

// messageText resolves the input message from --input or positional args.
func messageText(args []string) (string, error) {
	if inputFile != "" {
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no message given (pass text or --input)")
	}
	return strings.Join(args, " "), nil
}
