// Package alphabet holds the character-to-symbol tables for the supported
// Morse alphabets.
//
// Tables are built once at construction and immutable afterwards, so an
// Alphabet is safe for concurrent lookups without locking.
package alphabet
