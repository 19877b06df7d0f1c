// Package text renders encoded messages as printable dot/dash strings.
//
// The format is validated at construction, so an unsupported format never
// produces partial output.
package text
