package baseconv

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OutputBase selects the forced output format for batch conversion.
type OutputBase string

const (
	// BaseFloat renders the value float-style with five decimals.
	BaseFloat OutputBase = "f"
	// BaseBinary renders the value as b-prefixed binary.
	BaseBinary OutputBase = "2"
	// BaseOctal renders the value as Ox-prefixed octal.
	BaseOctal OutputBase = "8"
	// BaseDecimal renders the value as plain decimal.
	BaseDecimal OutputBase = "10"
	// BaseHex renders the value as 0x-prefixed hexadecimal.
	BaseHex OutputBase = "16"
)

// ParseOutputBase maps a base selector string to an OutputBase.
func ParseOutputBase(s string) (OutputBase, bool) {
	switch OutputBase(s) {
	case BaseFloat, BaseBinary, BaseOctal, BaseDecimal, BaseHex:
		return OutputBase(s), true
	default:
		return "", false
	}
}

// Format renders a normalized value in the forced output base.
func Format(n int64, base OutputBase) string {
	switch base {
	case BaseFloat:
		return fmt.Sprintf("%.5f", float64(n))
	case BaseBinary:
		return "b" + strconv.FormatInt(n, 2)
	case BaseOctal:
		return "Ox" + strconv.FormatInt(n, 8)
	case BaseHex:
		return "0x" + strconv.FormatInt(n, 16)
	default:
		return strconv.FormatInt(n, 10)
	}
}

var groupedPrinter = message.NewPrinter(language.English)

// FormatGrouped renders a decimal value with digit grouping ("1,234,567").
func FormatGrouped(n int64) string {
	return groupedPrinter.Sprintf("%d", n)
}
