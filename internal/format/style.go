package format

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// RGB is a 24-bit text colour.
type RGB struct {
	R, G, B uint8
}

var (
	Gold = RGB{R: 255, G: 215, B: 0}
	Red  = RGB{R: 255, G: 0, B: 0}
)

// Style is the text styling capability of an output sink.
type Style interface {
	Colorize(text string, c RGB) string
}

// Plain leaves text untouched.
type Plain struct{}

func (Plain) Colorize(text string, _ RGB) string { return text }

// ANSI wraps text in 24-bit colour escape sequences.
type ANSI struct{}

func (ANSI) Colorize(text string, c RGB) string {
	if text == "" {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, text)
}

// Styles holds the style of each output stream of a sink.
type Styles struct {
	Out Style
	Err Style
}

// PlainStyles disables colour on both streams.
func PlainStyles() Styles {
	return Styles{Out: Plain{}, Err: Plain{}}
}

// StylesFor resolves a colour mode separately for the output and error files,
// so redirecting one stream does not leak escape codes into it.
func StylesFor(mode string, out, errOut *os.File) Styles {
	return Styles{Out: StyleFor(mode, out), Err: StyleFor(mode, errOut)}
}

// StyleFor resolves a colour mode (auto, always or never) for f.
func StyleFor(mode string, f *os.File) Style {
	switch mode {
	case "always":
		return ANSI{}
	case "never":
		return Plain{}
	default:
		return AutoStyle(f)
	}
}

// AutoStyle returns ANSI when f is a terminal and Plain otherwise.
func AutoStyle(f *os.File) Style {
	if f == nil {
		return Plain{}
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return ANSI{}
	}
	return Plain{}
}
