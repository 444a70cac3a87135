package baseconv

import (
	"fmt"
	"strconv"
)

// maxNormalizePasses bounds the conversion loop. Every literal the grammar
// accepts reaches decimal form in at most three passes; the cap only exists
// to turn a non-terminating literal into a reportable error.
const maxNormalizePasses = 16

// Canonical reports whether lit consists solely of decimal digits, '.' and
// an optional sign, i.e. whether the normalization loop may stop.
func Canonical(lit string) bool {
	if lit == "" {
		return false
	}
	for i := 0; i < len(lit); i++ {
		b := lit[i]
		if (b >= '0' && b <= '9') || b == '.' || b == '-' {
			continue
		}
		return false
	}
	return true
}

// Normalize applies Convert repeatedly until the literal is canonical, then
// parses it as a signed base-10 64-bit integer. A literal that fails a
// conversion pass, parses to a non-integer canonical form (a float), or
// never becomes canonical yields an error instead of looping forever.
func Normalize(lit string) (int64, error) {
	cur := lit
	for pass := 0; pass < maxNormalizePasses; pass++ {
		if Canonical(cur) {
			n, err := strconv.ParseInt(cur, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("literal %q: %w", cur, ErrParseInt)
			}
			return n, nil
		}
		next, err := Convert(cur)
		if err != nil {
			return 0, err
		}
		cur = next
	}
	return 0, fmt.Errorf("literal %q: %w", lit, ErrNormalizationLimit)
}
