// Package commands defines the telegraph CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - encode     Print the dot/dash representation of a message
//   - play       Key a message through the audio device
//   - write      Render a message into an audio file
//   - formats    List text formats, audio formats, and encodings
//
// # Implementation
//
// The root command loads configuration (file, environment, flags) and
// builds the dependency graph (alphabet, encoder, tone settings) before any
// subcommand runs, so handlers share one app context.
package commands
