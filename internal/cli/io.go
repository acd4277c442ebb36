package cli

import (
	"fmt"
	"io"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// IO handles command output. Errors go to errOut, in red when color is set.
type IO struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer, color bool) *IO {
	return &IO{out: out, errOut: errOut, color: color}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes a line to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Fail writes err to stderr, highlighted when the terminal supports it.
func (o *IO) Fail(err error) {
	if o.color {
		_, _ = fmt.Fprintf(o.errOut, "%s%v%s\n", ansiRed, err, ansiReset)
		return
	}
	_, _ = fmt.Fprintln(o.errOut, err)
}
