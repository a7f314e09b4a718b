package logsurgeon

import "strings"

// LogEvent is one framed group of tokens. Events are delimited by the
// header pattern (the first-declared variable pattern): a header token
// that begins a line opens a new event, the way a timestamp opens a
// log line. A header matched mid-line stays inside the current event,
// and tokens seen before the first line-starting header form a leading
// event of their own.
type LogEvent struct {
	// Tokens is the event's token slice in input order.
	Tokens []Token

	// Header is the event's first header-pattern variable, or nil for
	// an unheaded event.
	Header *Variable

	// LogType is the event template: static text verbatim, each
	// variable rendered as %name%.
	LogType string

	// Variables is the ordered subsequence of variable tokens.
	Variables []Variable
}

func newLogEvent(tokens []Token) *LogEvent {
	ev := &LogEvent{Tokens: tokens}

	var b strings.Builder
	for _, tok := range tokens {
		if tok.IsStatic() {
			b.WriteString(tok.Text)
			continue
		}
		if tok.isHeader() && ev.Header == nil {
			ev.Header = &Variable{Name: tok.Rule, Text: tok.Text, Captures: tok.Captures}
		}
		b.WriteByte('%')
		b.WriteString(tok.Rule)
		b.WriteByte('%')
		ev.Variables = append(ev.Variables, tok.variable())
	}
	ev.LogType = b.String()

	return ev
}

// framer groups the token stream into log events. It buffers at most
// one token: the header that will open the next event.
type framer struct {
	tok     *tokenizer
	pending *Token
	done    bool
}

func newFramer(tok *tokenizer) *framer {
	return &framer{tok: tok}
}

// next returns the next complete event, pulling the tokenizer only as
// far as the one-header look-ahead requires.
func (f *framer) next() (*LogEvent, bool) {
	var tokens []Token
	if f.pending != nil {
		tokens = append(tokens, *f.pending)
		f.pending = nil
	} else if f.done {
		return nil, false
	}

	for {
		tok, ok := f.tok.next()
		if !ok {
			f.done = true
			break
		}
		if tok.isHeader() && tok.lineStart && len(tokens) > 0 {
			f.pending = &tok
			break
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 {
		return nil, false
	}
	return newLogEvent(tokens), true
}
