package hfe

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic            = errors.New("hfe: bad magic, expected " + Signature)
	ErrTruncatedHeader     = errors.New("hfe: truncated header")
	ErrTruncatedTrackTable = errors.New("hfe: truncated track table")
	ErrTruncatedBlock      = errors.New("hfe: truncated block")
)

// InvalidEnumValueError reports a byte that does not belong to the closed
// value set of an enumerated header field.
type InvalidEnumValueError struct {
	Field string
	Value byte
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("hfe: invalid %s value 0x%02X", e.Field, e.Value)
}
