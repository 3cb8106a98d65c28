package cli

// TokenKind classifies one invocation token.
type TokenKind int

const (
	// TokenMalformed covers everything that is neither a short nor a
	// long option: empty tokens, a bare "-", "--" followed by a
	// non-letter, multi-letter short forms, and positional values.
	TokenMalformed TokenKind = iota
	TokenShort
	TokenLong
)

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Classify determines the kind of a token and, for options, its name:
// the single letter of a short option or the remainder after "--" for a
// long one. Classification is pure; long names are taken verbatim with
// no prefix matching.
func Classify(token string) (TokenKind, string) {
	if len(token) < 2 || token[0] != '-' {
		return TokenMalformed, ""
	}
	if token[1] != '-' {
		if len(token) == 2 && isLetter(token[1]) {
			return TokenShort, token[1:]
		}
		return TokenMalformed, ""
	}
	if len(token) >= 3 && isLetter(token[2]) {
		return TokenLong, token[2:]
	}
	return TokenMalformed, ""
}

// matchToken reports whether token selects the option or command named
// by long/short. A short name of 0 never matches.
func matchToken(token, long string, short byte) bool {
	switch kind, name := Classify(token); kind {
	case TokenShort:
		return short != 0 && name[0] == short
	case TokenLong:
		return name == long
	default:
		return false
	}
}

// isHelp reports whether the token is the help alias.
func isHelp(token string) bool { return matchToken(token, "help", 'H') }

// isVersion reports whether the token is the version alias.
func isVersion(token string) bool { return matchToken(token, "version", 'V') }

// valueRunLength counts the tokens at the head of rest that belong to
// the preceding option: the run stops at the first token that looks
// like an option (a "-" with at least one following character). A bare
// "-" is a value.
func valueRunLength(rest []string) int {
	for i, tok := range rest {
		if len(tok) > 1 && tok[0] == '-' {
			return i
		}
	}
	return len(rest)
}
