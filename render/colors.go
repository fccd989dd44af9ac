package render

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colors holds the highlighting functions.
type Colors struct {
	Interest func(string, ...any) string
	Other    func(string, ...any) string
}

// NewColors returns the screen palette: teal for datasets of interest, grey
// for the rest.
func NewColors() *Colors {
	return &Colors{
		Interest: escaped(color.RGB(0x70, 0x9B, 0x92).SprintfFunc()),
		Other:    escaped(color.RGB(0x5D, 0x5D, 0x5D).SprintfFunc()),
	}
}

func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.ReplaceAll(v, "%", "%%"))
	}
}

func (c *Colors) interest(s string) string {
	if c == nil || c.Interest == nil {
		return s
	}
	return c.Interest(s)
}

func (c *Colors) other(s string) string {
	if c == nil || c.Other == nil {
		return s
	}
	return c.Other(s)
}

// ColorsFor returns NewColors when w is a terminal and nil otherwise.
func ColorsFor(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}
