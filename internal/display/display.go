// Package display applies console styling for the lifetime of a run and
// guarantees it is undone on every exit path.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Mode selects when colour escapes are written.
type Mode int

const (
	// ModeAuto follows fatih/color detection (terminal on stdout, NO_COLOR unset).
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

// ParseMode converts "auto", "always" or "never" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

// Style is the console appearance held while a program runs.
type Style struct {
	Foreground color.Attribute
	Title      string
}

// Options tune how a Style is applied.
type Options struct {
	Mode     Mode
	SetTitle bool
}

// Session is an acquired Style. Release must be called, normally deferred.
type Session struct {
	w        io.Writer
	colored  bool
	titled   bool
	released bool
}

// Acquire writes the escape sequences for s to w and returns the session
// that undoes them.
func Acquire(w io.Writer, s Style, opts Options) *Session {
	sess := &Session{w: w, colored: enabled(opts.Mode)}

	if sess.colored && opts.SetTitle && s.Title != "" {
		fmt.Fprintf(w, "\x1b]0;%s\x07", s.Title)
		sess.titled = true
	}

	fg := color.New(s.Foreground)
	if sess.colored {
		fg.EnableColor()
	} else {
		fg.DisableColor()
	}
	fg.SetWriter(w)

	return sess
}

// Release restores the default colour and clears the title.
// Calling it more than once has no further effect.
func (s *Session) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true

	if s.colored {
		reset := color.New(color.Reset)
		reset.EnableColor()
		reset.SetWriter(s.w)
	}
	if s.titled {
		fmt.Fprint(s.w, "\x1b]0;\x07")
	}
}

func enabled(mode Mode) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return !color.NoColor
	}
}
