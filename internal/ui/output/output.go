// Package output decides how styled text is rendered for the process.
package output

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Mode is the user's color preference.
type Mode string

// Color modes accepted by --color.
const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ErrInvalidMode is returned for an unrecognized color mode.
var ErrInvalidMode = zerr.New("invalid color mode, expected auto, always or never")

var current atomic.Value

func init() {
	current.Store(ModeAuto)
}

// ParseMode validates a color mode. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidMode, "unrecognized color mode "+s), "color", s)
	}
}

// Enabled reports whether colors are written for mode. Auto colors only
// interactive terminals outside CI.
func Enabled(mode Mode, isTTY, isCI bool) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isTTY && !isCI
	}
}

// SetMode selects the process-wide color mode and applies it to lipgloss.
func SetMode(mode Mode) {
	current.Store(mode)
	lipgloss.SetColorProfile(Profile(os.Stdout))
}

// Profile returns the color profile used when writing to w.
func Profile(w io.Writer) termenv.Profile {
	mode, _ := current.Load().(Mode)

	isTTY := false
	if f, ok := w.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1" || os.Getenv("NO_COLOR") != ""

	if !Enabled(mode, isTTY, isCI) {
		return termenv.Ascii
	}
	if mode == ModeAlways {
		return termenv.TrueColor
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w using the current mode. A nil writer means stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	opts = append(opts, termenv.WithProfile(Profile(w)), termenv.WithTTY(true))
	return termenv.NewOutput(w, opts...)
}
