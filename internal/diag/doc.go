// Package diag collects non-fatal diagnostics produced while a line is
// tokenized and converted. A dropped literal is a diagnostic, not an error:
// the rest of the line keeps tokenizing.
package diag
