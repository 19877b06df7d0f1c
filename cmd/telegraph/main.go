package main

import (
	"os"

	"telegraph/cmd/telegraph/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
