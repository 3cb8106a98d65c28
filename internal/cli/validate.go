package cli

// parseOptions enforces the option schema over the tokens following
// firstOpt and streams each option's value slice to the command's parse
// callback. Pass 1 audits presence and repetition over the whole tail
// before any value is extracted; pass 2 walks left to right consuming
// value runs.
func (e *Engine) parseOptions(cmd *Command, entry *NamespaceEntry, schema []Option, argv []string, firstOpt int) error {
	tail := argv[firstOpt:]

	for i := range schema {
		opt := &schema[i]
		count := 0
		for _, tok := range tail {
			if matchToken(tok, opt.LongName, opt.ShortName) {
				count++
			}
		}

		name := nameWithSlash(opt.ShortName, opt.LongName)
		if opt.Required && count == 0 {
			e.fail("%s: Missing required option %s.\n", e.App.Name, name)
			return ErrMissingRequiredOption
		}
		if opt.MaxCount != 0 && count > opt.MaxCount {
			e.fail("%s: Option supplied too many times %s.\n", e.App.Name, name)
			return ErrOptionRepeated
		}
	}

	for i := firstOpt; i < len(argv); i++ {
		tok := argv[i]
		if kind, _ := Classify(tok); kind == TokenMalformed {
			e.fail("%s: Invalid format %s.\n", e.App.Name, tok)
			return ErrInvalidToken
		}

		opt := findOption(schema, tok)
		if opt == nil {
			e.fail("%s: Unrecognized option %s.\n", e.App.Name, tok)
			return ErrUnknownOption
		}

		var values []string
		if opt.ValueLabel != "" {
			n := valueRunLength(argv[i+1:])
			if opt.MaxCount > 0 {
				emptyRun := n == 0 && (opt.Required || opt.OptionalValue)
				if emptyRun || n > opt.MaxCount {
					e.fail("%s: Invalid number of arguments for %s.\n", e.App.Name, tok)
					return ErrInvalidArgumentCount
				}
			}
			values = argv[i+1 : i+1+n]
			i += n
		}

		var rc int
		switch {
		case cmd.OptionsParse != nil:
			rc = cmd.OptionsParse(opt.LongName, values)
		case cmd.NamespaceOptsParse != nil && entry != nil:
			rc = cmd.NamespaceOptsParse(entry.Name, opt.LongName, values)
		default:
			e.Printer.Errorf("%s: Internal error.\n", e.App.Name)
			return ErrOptionHandler
		}
		if rc != 0 {
			e.fail("%s: Error during options handling.\n", e.App.Name)
			return ErrOptionHandler
		}
	}

	return nil
}

// findOption returns the first schema option the token matches, or nil.
func findOption(schema []Option, token string) *Option {
	for i := range schema {
		if matchToken(token, schema[i].LongName, schema[i].ShortName) {
			return &schema[i]
		}
	}
	return nil
}
