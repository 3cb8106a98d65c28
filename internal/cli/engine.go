package cli

import (
	"os"

	"github.com/dukaforge/sedctl/internal/auditlog"
	"github.com/dukaforge/sedctl/internal/printer"
	"github.com/dukaforge/sedctl/internal/status"
	"github.com/dukaforge/sedctl/pkg/sed"
)

// Exit statuses for invocations that never reach a handler.
const (
	exitSuccess = 0
	exitFailure = 1
)

// Engine dispatches one invocation against a command table. The zero
// value is not usable; populate App, Commands and Printer at least.
type Engine struct {
	App      *App
	Commands []*Command

	Printer *printer.Printer
	Decoder *status.Decoder

	// Audit, when non-nil, receives one line per executed command.
	Audit *auditlog.Logger

	// Privileged reports whether the caller's effective identity may
	// run SURequired commands. Defaults to an effective-uid-zero
	// check.
	Privileged func() bool

	// Hardware returns the NVMe completion word of the most recent
	// device operation, for diagnostic decoding. Defaults to zero.
	Hardware func() sed.CompletionWord

	// SystemLogs lists the system log paths probed read-only before a
	// handler runs, so surrounding tooling can correlate driver-level
	// entries. May be empty.
	SystemLogs []string

	configured bool
}

// Run resolves and executes one invocation. argv[0] is the program
// name, argv[1] the command selector. The return value is the handler's
// raw status, or 0/1 for invocations settled by the engine itself
// (help, parse errors).
func (e *Engine) Run(argv []string) int {
	cmd, err := e.resolveCommand(argv)
	if err != nil {
		return exitFailure
	}
	if cmd == nil {
		// Top-level help.
		return exitSuccess
	}

	e.configureCommands()

	if len(argv) >= 3 && helpPosition(argv) != -1 {
		if !cmd.Hidden {
			e.printCommandHelp(cmd)
		}
		return exitSuccess
	}

	if cmd.SURequired && !e.privileged() {
		e.Printer.Errorf("%s: Must be run as root.\n", e.App.Name)
		return exitFailure
	}

	var schema []Option
	var entry *NamespaceEntry
	firstOpt := 2
	switch {
	case cmd.Options != nil:
		schema = cmd.Options
	case cmd.Namespace != nil:
		entry, err = e.resolveEntry(cmd.Namespace, argv)
		if err != nil {
			return exitFailure
		}
		schema = entry.Options
		firstOpt = 4
	default:
		// Argument-less command; nothing to validate.
		return e.runCommand(cmd, argv)
	}

	if err := e.parseOptions(cmd, entry, schema, argv, firstOpt); err != nil {
		return exitFailure
	}
	return e.runCommand(cmd, argv)
}

// resolveCommand matches argv[1] against the command table. It returns
// (nil, nil) when the selector was the help alias and top-level help
// has been rendered.
func (e *Engine) resolveCommand(argv []string) (*Command, error) {
	if len(argv) < 2 {
		e.fail("%s: No command given.\n", e.App.Name)
		return nil, ErrMissingCommand
	}
	selector := argv[1]

	if kind, _ := Classify(selector); kind == TokenMalformed {
		e.fail("%s: Unrecognized command %s.\n", e.App.Name, selector)
		return nil, ErrUnknownCommand
	}

	for _, cmd := range e.Commands {
		if matchToken(selector, cmd.Name, cmd.ShortName) {
			return cmd, nil
		}
	}
	if isHelp(selector) {
		e.printHelp()
		return nil, nil
	}

	e.fail("%s: Unrecognized command %s.\n", e.App.Name, selector)
	return nil, ErrUnknownCommand
}

// resolveEntry matches the namespace selector (argv[2]) and entry name
// (argv[3]). Entry names are compared exactly, first match wins.
func (e *Engine) resolveEntry(ns *Namespace, argv []string) (*NamespaceEntry, error) {
	if len(argv) < 3 {
		e.fail("%s: Missing namespace option.\n", e.App.Name)
		return nil, ErrMissingNamespaceFlag
	}
	if len(argv) < 4 {
		e.fail("%s: Missing namespace name.\n", e.App.Name)
		return nil, ErrMissingNamespaceName
	}
	if !matchToken(argv[2], ns.LongName, ns.ShortName) {
		e.fail("%s: Unrecognized option.\n", e.App.Name)
		return nil, ErrMissingNamespaceFlag
	}
	for i := range ns.Entries {
		if ns.Entries[i].Name == argv[3] {
			return &ns.Entries[i], nil
		}
	}
	e.fail("%s: Unrecognized namespace entry.\n", e.App.Name)
	return nil, ErrUnknownNamespaceEntry
}

// configureCommands runs each command's Configure hook once per
// process. A negative result hides the command; hooks never un-hide.
func (e *Engine) configureCommands() {
	if e.configured {
		return
	}
	e.configured = true
	for _, cmd := range e.Commands {
		if cmd.Configure != nil && cmd.Configure() < 0 {
			cmd.Hidden = true
		}
	}
}

// helpPosition returns the index of the first help alias among the
// tokens following the command selector, or -1.
func helpPosition(argv []string) int {
	for i := 2; i < len(argv); i++ {
		if isHelp(argv[i]) {
			return i
		}
	}
	return -1
}

func (e *Engine) privileged() bool {
	if e.Privileged != nil {
		return e.Privileged()
	}
	return os.Geteuid() == 0
}

func (e *Engine) hardware() sed.CompletionWord {
	if e.Hardware != nil {
		return e.Hardware()
	}
	return 0
}

// fail prints a user-facing parse error followed by the help hint.
func (e *Engine) fail(format string, args ...any) {
	e.Printer.Errorf(format, args...)
	e.printHint()
}

func (e *Engine) printHint() {
	e.Printer.Infof("Try `%s --help' for more information.\n", e.App.Name)
}
