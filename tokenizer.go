package logsurgeon

// tokenizer walks the input emitting alternating static and variable
// tokens. Tokens cover the input exactly: concatenating their Text
// reproduces the stream byte-for-byte.
//
// A variable match is attempted at position p only when p is the input
// start, the code point before p is a delimiter, or a variable token
// ended exactly at p (so variables can chain without an intervening
// delimiter). Everything else is swallowed into the pending static
// span one byte at a time; malformed UTF-8 is therefore opaque static
// text.
type tokenizer struct {
	input  string
	delims *delimiterSet
	scan   *scanner

	pos         int
	staticStart int
	lastVarEnd  int

	// pending holds a variable token that must wait for the static
	// span preceding it to be emitted first.
	pending *Token
}

func newTokenizer(input string, delims *delimiterSet, scan *scanner) *tokenizer {
	return &tokenizer{
		input:      input,
		delims:     delims,
		scan:       scan,
		lastVarEnd: -1,
	}
}

// next returns the next token, lazily advancing through the input.
func (t *tokenizer) next() (Token, bool) {
	if t.pending != nil {
		tok := *t.pending
		t.pending = nil
		return tok, true
	}

	for t.pos < len(t.input) {
		if !t.attemptAt(t.pos) {
			t.pos++
			continue
		}

		m, ok := t.scan.tryMatch(t.input, t.pos)
		if !ok {
			t.pos++
			continue
		}

		start := t.pos
		end := start + m.length
		text := t.input[start:end]
		variable := Token{
			Rule:      m.pattern.name,
			Text:      text,
			Captures:  t.scan.captureGroups(m.pattern, text),
			ruleIndex: m.pattern.index,
			lineStart: start == 0 || t.input[start-1] == '\n',
		}

		t.pos = end
		t.lastVarEnd = end

		if start > t.staticStart {
			static := staticToken(t.input[t.staticStart:start])
			t.staticStart = end
			t.pending = &variable
			return static, true
		}

		t.staticStart = end
		return variable, true
	}

	if t.staticStart < len(t.input) {
		tok := staticToken(t.input[t.staticStart:])
		t.staticStart = len(t.input)
		return tok, true
	}

	return Token{}, false
}

func (t *tokenizer) attemptAt(pos int) bool {
	return pos == t.lastVarEnd || t.delims.boundaryBefore(t.input, pos)
}
