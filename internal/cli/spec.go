// Package cli implements the sedctl command dispatch engine: a command
// table with per-command option schemas (optionally scoped by a
// namespace of named sub-entries), a token classifier, a resolver, a
// two-pass option validator, and an execution wrapper that decodes the
// handler's status and audit-logs the invocation.
//
// The engine supports exactly one invocation shape:
//
//	program --<command> [--<namespace> <entry>] [--<option> [<value>...]]...
//
// It is not a general-purpose argument parser; there is no abbreviated
// long-option matching and no short-option grouping.
package cli

// Option describes one named flag within a command or namespace-entry
// schema.
type Option struct {
	// LongName is the unique key of the option within its schema,
	// matched against "--<LongName>" verbatim and case-sensitively.
	LongName string

	// ShortName is the single-letter alias, or 0 for none.
	ShortName byte

	// Desc is the one-line help text.
	Desc string

	// ValueLabel names the option's value in help output. A non-empty
	// label means the option consumes the run of value tokens that
	// follows it.
	ValueLabel string

	// Required options must appear at least once in the invocation.
	Required bool

	// OptionalValue marks an option whose value may be omitted in
	// help rendering. Together with Required it also gates the
	// empty-value-run check during extraction.
	OptionalValue bool

	// Hidden options are excluded from help output.
	Hidden bool

	// MaxCount, when nonzero, bounds both the number of times the
	// option may appear among the invocation tokens and the number of
	// value tokens consumed after one occurrence. The two roles share
	// this field for compatibility with existing command tables.
	MaxCount int
}

// NamespaceEntry is one named sub-entry of a namespace. Each entry owns
// an independent option schema.
type NamespaceEntry struct {
	Name    string
	Desc    string
	Options []Option
}

// Namespace scopes a command by a named sub-entry, selected as
// "--<LongName> <entry-name>".
type Namespace struct {
	LongName  string
	ShortName byte
	Entries   []NamespaceEntry
}

// Command is one top-level verb of the tool. Exactly one of Options and
// Namespace may be set; a command with neither takes no option tokens
// at all.
type Command struct {
	Name      string
	ShortName byte
	Desc      string
	LongDesc  string

	// SURequired commands refuse to run for unprivileged callers.
	SURequired bool

	// Hidden commands are excluded from help output but still resolve
	// and execute when invoked explicitly by name.
	Hidden bool

	Options   []Option
	Namespace *Namespace

	// Handle runs the command and returns its raw status.
	Handle func() int

	// OptionsParse receives each extracted option and its value slice
	// when Options is set. A nonzero result aborts the invocation.
	OptionsParse func(option string, values []string) int

	// NamespaceOptsParse receives each extracted option together with
	// the resolved entry name when Namespace is set.
	NamespaceOptsParse func(entry, option string, values []string) int

	// Configure, when set, runs once per process before option
	// handling. A negative result hides the command; it never
	// un-hides one.
	Configure func() int
}

// App describes the program for usage and hint lines.
type App struct {
	// Name is the binary name used in usage lines and error hints.
	Name string

	// Title is the first line of top-level help.
	Title string

	// Info is the one-line usage summary.
	Info string

	// Note, when non-empty, is printed below the usage summary.
	Note string

	// Man names the manual page referenced at the end of help output.
	Man string
}
