// Package telegraph translates text into Morse symbol sequences.
//
// The encoder owns the gap rules: element gaps between the symbols of one
// character, letter gaps between characters, a single word gap for any run
// of whitespace.
package telegraph
