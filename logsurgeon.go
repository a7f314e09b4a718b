// Package logsurgeon converts unstructured log text into a stream of
// structured log events. Each event carries a canonical log type (a
// template where variable fields are replaced by named placeholders)
// and the list of extracted variables, each with its own named
// subgroup captures.
//
// A ReaderParser is configured with a delimiter alphabet and an
// ordered set of named variable patterns, compiled once, and then fed
// any number of input streams:
//
//	p := logsurgeon.NewReaderParser()
//	p.AddVariablePattern("number", `[0-9]+`)
//	if err := p.Compile(); err != nil {
//	    log.Fatal(err)
//	}
//	p.SetInputStream("a 1 b")
//	for {
//	    event, err := p.NextLogEvent()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    fmt.Println(event.LogType)
//	}
//
// The first-declared pattern is the header pattern: a match of it at
// the start of a line opens a new log event, the way a timestamp opens
// a log line.
package logsurgeon

import "io"

// ReaderParser is the stateful parser: configure, Compile, set an
// input stream, iterate events. Configuration calls are rejected after
// Compile; stream calls are rejected before it. A ReaderParser is not
// safe for concurrent use, but the compiled patterns are immutable and
// Clone shares them across instances.
type ReaderParser struct {
	delims *delimiterSet
	defs   []patternDef

	// scan is non-nil once compiled; it doubles as the phase flag.
	scan *scanner

	input    string
	hasInput bool
	fr       *framer
}

// NewReaderParser returns a parser with the default delimiter set and
// no variable patterns.
func NewReaderParser() *ReaderParser {
	return &ReaderParser{delims: newDelimiterSet(DefaultDelimiters)}
}

// SetDelimiters replaces the delimiter set with the code points of
// chars. Duplicates are ignored; non-ASCII code points act as
// independent delimiters. Legal only before Compile.
func (p *ReaderParser) SetDelimiters(chars string) error {
	if p.scan != nil {
		return ErrParserFrozen
	}
	p.delims = newDelimiterSet(chars)
	return nil
}

// AddVariablePattern appends a named variable pattern. Names must be
// non-empty; duplicate names are permitted and form distinct
// alternatives that report the registered name on match. The regex
// source is not validated until Compile.
func (p *ReaderParser) AddVariablePattern(name, source string) error {
	if p.scan != nil {
		return ErrParserFrozen
	}
	if name == "" {
		return ErrEmptyPatternName
	}
	p.defs = append(p.defs, patternDef{name: name, source: source})
	return nil
}

// Compile freezes the configuration and builds the scanner. Calling
// Compile again is a no-op. An empty registry is ill-formed.
func (p *ReaderParser) Compile() error {
	if p.scan != nil {
		return nil
	}
	if len(p.defs) == 0 {
		return ErrNoPatterns
	}

	scan, err := compilePatterns(p.defs)
	if err != nil {
		return err
	}
	p.scan = scan

	return nil
}

// SetInputStream resets the parser onto a new input. Legal any number
// of times after Compile. Produced events reference text, so text must
// outlive them.
func (p *ReaderParser) SetInputStream(text string) error {
	if p.scan == nil {
		return ErrNotCompiled
	}

	p.input = text
	p.hasInput = true
	p.fr = newFramer(newTokenizer(text, p.delims, p.scan))

	return nil
}

// NextLogEvent returns the next event in input order, or io.EOF once
// the stream is exhausted. Further calls keep returning io.EOF.
// Matching itself never fails: any byte sequence is parseable.
func (p *ReaderParser) NextLogEvent() (*LogEvent, error) {
	if p.scan == nil {
		return nil, ErrNotCompiled
	}
	if !p.hasInput {
		return nil, ErrNoInput
	}

	event, ok := p.fr.next()
	if !ok {
		return nil, io.EOF
	}

	return event, nil
}

// Clone returns a new parser sharing this parser's compiled patterns
// and delimiter set, with independent stream state. Legal only after
// Compile.
func (p *ReaderParser) Clone() (*ReaderParser, error) {
	if p.scan == nil {
		return nil, ErrNotCompiled
	}
	return &ReaderParser{
		delims: p.delims,
		defs:   p.defs,
		scan:   p.scan,
	}, nil
}
