// Package printer routes leveled diagnostic output: informational text
// goes to stdout, warnings and errors go to stderr and are additionally
// mirrored, best effort, into the audit log file.
package printer

import (
	"fmt"
	"io"
	"os"
)

// Level is the severity of a printed message. Lower values are more
// severe, matching syslog ordering.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

// MirrorFunc receives a copy of every warning-or-worse message. A nil
// mirror disables copying. Mirror failures are swallowed; diagnostic
// output must never fail the command.
type MirrorFunc func(msg string) error

// Printer writes leveled messages to a pair of output streams.
type Printer struct {
	Out    io.Writer
	Err    io.Writer
	Mirror MirrorFunc
}

// New returns a Printer bound to stdout and stderr.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Printf formats and writes a message at the given level. Warnings and
// errors go to the error stream and the mirror; everything else goes to
// the output stream.
func (p *Printer) Printf(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if level <= LevelWarning {
		fmt.Fprint(p.Err, msg)
		if p.Mirror != nil {
			_ = p.Mirror(msg)
		}
		return
	}
	fmt.Fprint(p.Out, msg)
}

// Infof writes an informational message to the output stream.
func (p *Printer) Infof(format string, args ...any) {
	p.Printf(LevelInfo, format, args...)
}

// Errorf writes an error message to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	p.Printf(LevelError, format, args...)
}
