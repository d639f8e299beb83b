package qris

import "fmt"

var (
	ErrAlreadyBuilt   = fmt.Errorf("editor already built")
	ErrValueTooLong   = fmt.Errorf("value too long")
	ErrEmptyPayload   = fmt.Errorf("empty payload")
	ErrRecordNotFound = fmt.Errorf("record not found")
)

// LengthError reports an override value that exceeds the maximum length
// allowed for its tag. The build that raised it produced no output.
type LengthError struct {
	Tag    string
	Length int
	Max    int
}

func (le *LengthError) Error() string {
	return fmt.Sprintf("tag %s value too long (%d characters, max %d)", le.Tag, le.Length, le.Max)
}

func (le *LengthError) Unwrap() error {
	return ErrValueTooLong
}
