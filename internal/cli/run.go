package cli

import (
	"io"
	"os"
	"time"
)

// runCommand executes the resolved handler: it times the call, probes
// the system log for a read cursor, decodes the status, audit-logs the
// invocation, and passes the handler's raw result through as the exit
// status.
func (e *Engine) runCommand(cmd *Command, argv []string) int {
	if cmd.Handle == nil {
		e.Printer.Errorf("%s: Internal error.\n", e.App.Name)
		return exitFailure
	}

	start := time.Now()

	// Seek to the end of the system log so surrounding tooling can
	// inspect entries the driver emits during this command. Failure
	// to open any candidate is silently skipped.
	if f := e.openSystemLog(); f != nil {
		defer f.Close()
	}

	result := cmd.Handle()

	if !isHelp(argv[1]) && !isVersion(argv[1]) {
		if e.Decoder != nil {
			e.Decoder.Print(result, e.hardware())
		}
	}

	elapsed := time.Since(start)

	// The version command is the one invocation exempt from auditing.
	if cmd.ShortName != 'V' && e.Audit != nil {
		_ = e.Audit.LogCommand(argv, result, elapsed)
	}

	return result
}

// openSystemLog opens the first readable system log candidate and
// positions the cursor at its end. Returns nil when none opens.
func (e *Engine) openSystemLog() *os.File {
	for _, path := range e.SystemLogs {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			f.Close()
			continue
		}
		return f
	}
	return nil
}
