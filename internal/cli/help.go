package cli

import "fmt"

const padding = "   "

// shortNameString renders "-x" for a short name, or "" for none.
func shortNameString(short byte) string {
	if short == 0 {
		return ""
	}
	return fmt.Sprintf("-%c", short)
}

// nameWithSlash renders "-x/--long", or "--long" without a short name.
func nameWithSlash(short byte, long string) string {
	if short == 0 {
		return "--" + long
	}
	return fmt.Sprintf("-%c/--%s", short, long)
}

// nameInBrackets renders "--long (-x)", or "--long" without a short
// name.
func nameInBrackets(short byte, long string) string {
	if short == 0 {
		return "--" + long
	}
	return fmt.Sprintf("--%s (-%c)", long, short)
}

// optionUsage renders "--name <LABEL>" or "--name [<LABEL>]" for
// options taking values.
func optionUsage(opt *Option) string {
	if opt.ValueLabel == "" {
		return "--" + opt.LongName
	}
	if opt.OptionalValue {
		return fmt.Sprintf("--%s [<%s>]", opt.LongName, opt.ValueLabel)
	}
	return fmt.Sprintf("--%s <%s>", opt.LongName, opt.ValueLabel)
}

// printHelp renders the top-level help screen: title, usage, and the
// visible command listing.
func (e *Engine) printHelp() {
	e.Printer.Infof("%s\n\n", e.App.Title)
	e.Printer.Infof("Usage: %s %s\n\n", e.App.Name, e.App.Info)
	if e.App.Note != "" {
		e.Printer.Infof("%s\n", e.App.Note)
	}

	e.Printer.Infof("\nAvailable commands:\n")
	for _, cmd := range e.Commands {
		if cmd.Hidden {
			continue
		}
		if short := shortNameString(cmd.ShortName); short != "" {
			e.Printer.Infof("%s%-4s--%-25s%s\n", padding, short, cmd.Name, cmd.Desc)
		} else {
			e.Printer.Infof("%s--%-25s%s\n", padding, cmd.Name, cmd.Desc)
		}
	}

	if len(e.Commands) > 0 {
		e.Printer.Infof("\nSee '%s <command> --help' for more information on a specific command.\n"+
			"e.g.\n%s%s --%s --help\n", e.App.Name, padding, e.App.Name, e.Commands[0].Name)
	}
	if e.App.Man != "" {
		e.Printer.Infof("For more information, please refer to manpage (man %s).\n", e.App.Man)
	} else {
		e.Printer.Infof("For more information, please refer to manpage.\n")
	}
}

// printCommandHelp renders the help screen for one command: usage with
// required options inline, the command header, and the option listing.
func (e *Engine) printCommandHelp(cmd *Command) {
	if cmd.Namespace != nil {
		e.printNamespaceHelp(cmd)
		return
	}

	e.Printer.Infof("Usage: %s --%s", e.App.Name, cmd.Name)

	allMandatory := true
	allHidden := true
	for i := range cmd.Options {
		opt := &cmd.Options[i]
		if opt.Hidden {
			continue
		}
		allHidden = false
		if !opt.Required {
			allMandatory = false
			continue
		}
		e.Printer.Infof(" %s", optionUsage(opt))
	}
	if cmd.Options != nil && !allMandatory {
		e.Printer.Infof(" [option...]")
	}
	e.Printer.Infof("\n\n")

	e.printCommandHeader(cmd)

	if cmd.Options != nil && !allHidden {
		e.Printer.Infof("Options that are valid with %s are:\n", nameInBrackets(cmd.ShortName, cmd.Name))
		e.printOptionsHelp(cmd.Options)
	}
}

// printNamespaceHelp renders the help screen for a namespaced command:
// the entry listing followed by each entry's private option block.
func (e *Engine) printNamespaceHelp(cmd *Command) {
	ns := cmd.Namespace
	e.Printer.Infof("Usage: %s --%s --%s <NAME>\n\n", e.App.Name, cmd.Name, ns.LongName)

	e.printCommandHeader(cmd)

	commandName := nameInBrackets(cmd.ShortName, cmd.Name)
	optionName := nameInBrackets(ns.ShortName, ns.LongName)

	e.Printer.Infof("Valid values of NAME are:\n")
	for i := range ns.Entries {
		e.Printer.Infof("%s%s - %s\n", padding, ns.Entries[i].Name, ns.Entries[i].Desc)
	}
	e.Printer.Infof("\n")

	for i := range ns.Entries {
		e.Printer.Infof("Options that are valid with %s %s %s are:\n",
			commandName, optionName, ns.Entries[i].Name)
		e.printOptionsHelp(ns.Entries[i].Options)
		if i+1 < len(ns.Entries) {
			e.Printer.Infof("\n")
		}
	}
}

func (e *Engine) printCommandHeader(cmd *Command) {
	desc := cmd.Desc
	if cmd.LongDesc != "" {
		desc = cmd.LongDesc
	}
	e.Printer.Infof("%s%s\n\n", padding, desc)
}

// printOptionsHelp renders the aligned option listing, skipping hidden
// options.
func (e *Engine) printOptionsHelp(options []Option) {
	for i := range options {
		opt := &options[i]
		if opt.Hidden {
			continue
		}
		short := shortNameString(opt.ShortName)
		if opt.ValueLabel != "" {
			e.Printer.Infof("%s%-4s%-38s%s\n", padding, short, optionUsage(opt), opt.Desc)
		} else {
			e.Printer.Infof("%s%-4s--%-36s%s\n", padding, short, opt.LongName, opt.Desc)
		}
	}
}
