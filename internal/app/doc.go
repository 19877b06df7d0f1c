// Package app wires application dependencies for the CLI.
//
// It builds the alphabet table, the encoder, and the tone settings from
// Config, exposing them via the Wire struct for commands to use.
package app
