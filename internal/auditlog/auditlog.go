// Package auditlog appends one line per invocation to the sedctl audit
// log. The log is shared by every concurrent invocation of the tool, so
// each append holds an exclusive advisory lock for the duration of the
// write. All failures here are non-fatal to the command that triggered
// the append.
package auditlog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// initialBufCap is the starting capacity for command-line
// reconstruction. Growth past it is amortized by the runtime and never
// loses previously written content.
const initialBufCap = 100

// Logger appends timestamped lines to a single audit log file.
type Logger struct {
	// Path of the audit log file. Created on first append.
	Path string

	// Program name used as the line prefix.
	Program string

	// now is stubbed in tests.
	now func() time.Time
}

// New returns a Logger appending to path on behalf of program.
func New(path, program string) *Logger {
	return &Logger{Path: path, Program: program, now: time.Now}
}

// CommandLine reconstructs the invocation display string by joining
// tokens with single spaces.
func CommandLine(tokens []string) string {
	var b strings.Builder
	b.Grow(initialBufCap)
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// Append writes "<timestamp> <program>: <msg>" to the log file under an
// exclusive advisory lock. A trailing newline is added when msg lacks
// one. The lock is released and the file closed on every path.
func (l *Logger) Append(msg string) error {
	f, err := os.OpenFile(l.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("lock audit log: %w", err)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	now := time.Now
	if l.now != nil {
		now = l.now
	}
	timestamp := now().Format(time.ANSIC)

	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	if _, err := fmt.Fprintf(f, "%s %s: %s", timestamp, l.Program, msg); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogCommand appends the audit line for one completed invocation: the
// reconstructed command line, the exit status, and the elapsed time in
// seconds and hundredths.
func (l *Logger) LogCommand(argv []string, result int, elapsed time.Duration) error {
	verdict := "success"
	if result != 0 {
		verdict = "failure"
	}
	ms := elapsed.Milliseconds()
	return l.Append(fmt.Sprintf("%s. Exit status is %d (%s). Command took %d.%02d s.",
		CommandLine(argv), result, verdict, ms/1000, (ms%1000)/10))
}
