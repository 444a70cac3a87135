// Package diagfmt renders diagnostics and token streams for the CLI.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"radix/internal/diag"
)

// PrettyOpts controls diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func severityLabel(sev diag.Severity, useColor bool) string {
	label := sev.String()
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// Pretty writes one line per diagnostic in span order.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s[%s]: %s", severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
		if !d.Primary.Empty() {
			fmt.Fprintf(w, " at %s", d.Primary.String())
		}
		fmt.Fprintln(w)
	}
}
