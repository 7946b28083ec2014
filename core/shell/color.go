package shell

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// ColorPrinter decides whether output gets colored.
type ColorPrinter struct {
	// Mode is one of ColorAlways, ColorAuto or ColorNever.
	Mode string
	// IsTerminal reports whether the destination is a terminal, consulted in
	// auto mode.
	IsTerminal func() bool
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case c == nil || c.Mode == ColorNever:
		return false
	case c.Mode == ColorAlways:
		return true
	default:
		return c.IsTerminal != nil && c.IsTerminal()
	}
}

func (c *ColorPrinter) Sprintf(attrs []color.Attribute, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}
	clr := color.New(attrs...)
	clr.EnableColor()
	return clr.Sprintf(format, a...)
}
