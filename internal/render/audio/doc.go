// Package audio renders encoded messages as tones: live playback through
// the default output device, or a WAV file on disk.
//
// Timing follows the PARIS convention: one unit is 1200/wpm milliseconds,
// a dash is three units, and the gap proportions come from the symbols
// themselves.
package audio
