package baseconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Convert rewrites one literal according to the first matching grammar rule.
// The rules are ordered and case-sensitive; a literal matching an earlier
// rule is never reconsidered against a later one.
//
//	0x<hex>      -> decimal
//	b<decimal>   -> binary digits, tagged with a trailing 'b'
//	Fx<hexbits>  -> float via IEEE-754 bit reinterpretation
//	Bx<hex>      -> binary, untagged
//	Ox<hex>      -> octal, untagged
//	<binary>d    -> decimal
//	<float>f     -> hex of the IEEE-754 bit pattern, prefixed 0x
//	<octal>o     -> hex, prefixed 0x
//	<binary>b    -> hex, prefixed 0x
//	<decimal>    -> hex, prefixed 0x (default rule)
func Convert(lit string) (string, error) {
	switch {
	case strings.HasPrefix(lit, "0x"):
		n, err := strconv.ParseInt(lit[2:], 16, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return strconv.FormatInt(n, 10), nil

	case strings.HasPrefix(lit, "b"):
		n, err := strconv.ParseInt(lit[1:], 10, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return strconv.FormatInt(n, 2) + "b", nil

	case strings.HasPrefix(lit, "Fx"):
		bits, err := strconv.ParseUint(lit[2:], 16, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return strconv.FormatFloat(math.Float64frombits(bits), 'g', -1, 64), nil

	case strings.HasPrefix(lit, "Bx"):
		n, err := strconv.ParseInt(lit[2:], 16, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return strconv.FormatInt(n, 2), nil

	case strings.HasPrefix(lit, "Ox"):
		n, err := strconv.ParseInt(lit[2:], 16, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return strconv.FormatInt(n, 8), nil

	case strings.HasSuffix(lit, "d"):
		n, err := strconv.ParseInt(lit[:len(lit)-1], 2, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return strconv.FormatInt(n, 10), nil

	case strings.HasSuffix(lit, "f"):
		f, err := strconv.ParseFloat(lit[:len(lit)-1], 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return "0x" + strconv.FormatUint(math.Float64bits(f), 16), nil

	case strings.HasSuffix(lit, "o"):
		n, err := strconv.ParseInt(lit[:len(lit)-1], 8, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return "0x" + strconv.FormatInt(n, 16), nil

	case strings.HasSuffix(lit, "b"):
		n, err := strconv.ParseInt(lit[:len(lit)-1], 2, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return "0x" + strconv.FormatInt(n, 16), nil

	default:
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return "", fmt.Errorf("literal %q: %w", lit, ErrParseInt)
		}
		return "0x" + strconv.FormatInt(n, 16), nil
	}
}
