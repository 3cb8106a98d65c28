package cli

import "errors"

// Invocation-shape errors, all detected before any handler runs.
// Each is printed with a remedial hint at the point of detection; the
// sentinels exist so callers and tests can distinguish the cases.
var (
	ErrMissingCommand        = errors.New("no command given")
	ErrUnknownCommand        = errors.New("unrecognized command")
	ErrMissingNamespaceFlag  = errors.New("missing namespace option")
	ErrMissingNamespaceName  = errors.New("missing namespace name")
	ErrUnknownNamespaceEntry = errors.New("unrecognized namespace entry")
	ErrMissingRequiredOption = errors.New("missing required option")
	ErrOptionRepeated        = errors.New("option supplied too many times")
	ErrInvalidToken          = errors.New("invalid token format")
	ErrUnknownOption         = errors.New("unrecognized option")
	ErrInvalidArgumentCount  = errors.New("invalid number of arguments")
	ErrOptionHandler         = errors.New("error during options handling")
)
