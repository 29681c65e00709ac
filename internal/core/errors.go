package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedSelection is matched by every *UnsupportedSelectionError.
var ErrUnsupportedSelection = errors.New("unsupported selection")

// UnsupportedSelectionError reports a discriminator that maps to no creator.
type UnsupportedSelectionError struct {
	Kind     string   // "platform", "notification type", ...
	Value    string   // the selection as entered
	Accepted []string // keys the registry would have accepted
}

func (e *UnsupportedSelectionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("unsupported %s: %q", e.Kind, e.Value)
}

// Is reports whether target is ErrUnsupportedSelection.
func (e *UnsupportedSelectionError) Is(target error) bool {
	return target == ErrUnsupportedSelection
}

// Choices returns the accepted keys joined for display.
func (e *UnsupportedSelectionError) Choices() string {
	return strings.Join(e.Accepted, ", ")
}

// IsUnsupportedSelection reports whether err (or anything it wraps)
// is an unsupported selection.
func IsUnsupportedSelection(err error) bool {
	return errors.Is(err, ErrUnsupportedSelection)
}
