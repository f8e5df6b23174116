// Error kinds shared by the PVL scanner and the VICAR label resolver.

package vicar

import (
	"errors"
	"fmt"
)

// The parsing layers report failures as one of a fixed set of kinds so
// callers can distinguish malformed input from caller misuse. Kinds are
// sentinels and wrapped errors match them with errors.Is().
var (
	// The cursor or a label scan moved past the available text.
	ErrEof = errors.New("unexpected end of input")

	// Malformed line structure, e.g. a continuation line with no
	// preceding key value pair.
	ErrSyntax = errors.New("syntax error")

	// Comment skip requested while not positioned at a comment.
	ErrCommentIsntComment = errors.New("not at a comment start")

	// An operation was invoked in a state its precondition forbids.
	// These indicate control flow misuse by the caller, not bad input.
	ErrProgramming = errors.New("parser misuse")

	// A typed accessor does not match the inferred value type.
	ErrInvalidType = errors.New("invalid value type")

	// The raw text failed to convert to the requested native type.
	ErrValueTypeParse = errors.New("value parse failure")

	// Text does not match any recognized enumeration token.
	ErrUnexpectedEnum = errors.New("unrecognized token")

	// A required label field, group or object is absent.
	ErrPropertyNotFound = errors.New("property not found")

	// I/O or another wrapped lower level failure.
	ErrLabel = errors.New("label error")
)

func syntaxError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

func programmingError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrProgramming, fmt.Sprintf(format, args...))
}

func unexpectedEnum(what, token string) error {
	return fmt.Errorf("%w: %s %q", ErrUnexpectedEnum, what, token)
}

func labelError(err error) error {
	return fmt.Errorf("%w: %v", ErrLabel, err)
}
