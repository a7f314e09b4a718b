package logsurgeon

type (
	// Capture maps a named subgroup to the substrings it matched, in
	// occurrence order. A subgroup nested inside a repeated group
	// contributes one entry per iteration.
	Capture map[string][]string

	// Token is one maximal slice of the input: either static text or a
	// variable match. Concatenating the Text of all tokens of all
	// events reproduces the input byte-for-byte.
	Token struct {
		// Rule is the name of the variable pattern that produced this
		// token, or "" for static text.
		Rule string

		// Text is a slice of the input stream, never a copy.
		Text string

		// Captures holds the named subgroup matches of a variable
		// token. Nil for static tokens.
		Captures Capture

		// ruleIndex is the declaration index of the producing pattern,
		// or -1 for static tokens. Index 0 is the header pattern.
		ruleIndex int

		// lineStart is true when the token begins at the input start
		// or directly after a newline. The framer only treats a header
		// token as an event boundary at a line start.
		lineStart bool
	}

	// Variable is the variable-token view exposed on LogEvent.
	Variable struct {
		Name     string
		Text     string
		Captures Capture
	}
)

// IsStatic reports whether the token is static text.
func (t Token) IsStatic() bool {
	return t.ruleIndex < 0
}

// isHeader reports whether the token was produced by the header
// pattern (declaration index 0).
func (t Token) isHeader() bool {
	return t.ruleIndex == 0
}

func (t Token) variable() Variable {
	return Variable{Name: t.Rule, Text: t.Text, Captures: t.Captures}
}

func staticToken(text string) Token {
	return Token{Text: text, ruleIndex: -1}
}
