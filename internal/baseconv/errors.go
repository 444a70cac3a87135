package baseconv

import "errors"

var (
	// ErrParseInt reports malformed digits or an out-of-range value for the
	// radix selected by the matching grammar rule.
	ErrParseInt = errors.New("failed to parse literal")

	// ErrInvalidInputFormat is part of the converter's error taxonomy but is
	// not raised by any current rule: the default rule swallows everything
	// that earlier rules reject. Kept so callers can already match on it.
	ErrInvalidInputFormat = errors.New("invalid input format")

	// ErrNormalizationLimit reports a literal that still was not a plain
	// decimal integer after the maximum number of conversion passes.
	ErrNormalizationLimit = errors.New("literal did not normalize to a decimal integer")
)
