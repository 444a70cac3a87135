// Package baseconv implements the numeric literal converter.
//
// Convert recognizes a small prefix/suffix grammar marking the source base
// of a literal and rewrites it one step toward another base. The transform
// is deliberately not idempotent: Normalize drives a literal to a plain
// decimal integer by applying Convert repeatedly, with a bounded pass count.
package baseconv
