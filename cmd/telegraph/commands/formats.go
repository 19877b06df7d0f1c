package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"telegraph/internal/alphabet"
	"telegraph/internal/render/audio"
	"telegraph/internal/render/text"
)

// formats: list everything the writer and player accept.
func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported alphabets, text formats, and audio encodings",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("alphabets:    %s\n", strings.Join(alphabet.Names(), ", "))
			fmt.Printf("text formats: %s\n", strings.Join(text.Formats(), ", "))
			for _, format := range audio.ListFormats() {
				encs, err := audio.ListEncodings(format)
				if err != nil {
					return err
				}
				fmt.Printf("audio %s:    %s\n", format, strings.Join(encs, ", "))
			}
			return nil
		},
	}
}
