package registry

import (
	"errors"
	"strings"
)

// MaxAttachmentBytes is the upload ceiling enforced at the file-intake
// boundary. The store itself performs no size checks; a blob that reaches it
// is kept as-is.
const MaxAttachmentBytes = 5 << 20

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrAttachmentTooLarge = errors.New("attachment exceeds the 5MB limit")
)

// ValidationError carries the labels of every required field found empty at
// submit time, never just the first.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
