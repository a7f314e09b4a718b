package logsurgeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameEvents(t *testing.T, input string, defs []patternDef) []*LogEvent {
	t.Helper()

	scan := compileScanner(t, defs)
	fr := newFramer(newTokenizer(input, newDelimiterSet(DefaultDelimiters), scan))

	var events []*LogEvent
	for {
		event, ok := fr.next()
		if !ok {
			return events
		}
		events = append(events, event)
	}
}

func TestFramer_HeaderAtLineStartOpensEvent(t *testing.T) {
	defs := []patternDef{{name: "number", source: `[0-9]+`}}

	events := frameEvents(t, "1 a\n2 b\n3 c", defs)

	require.Len(t, events, 3)
	assert.Equal(t, "%number% a\n", events[0].LogType)
	assert.Equal(t, "%number% b\n", events[1].LogType)
	assert.Equal(t, "%number% c", events[2].LogType)

	for _, event := range events {
		require.NotNil(t, event.Header)
		assert.Equal(t, "number", event.Header.Name)
	}
}

func TestFramer_HeaderMidLineDoesNotSplit(t *testing.T) {
	defs := []patternDef{{name: "number", source: `[0-9]+`}}

	events := frameEvents(t, "1 a 2 b", defs)

	require.Len(t, events, 1)
	assert.Equal(t, "%number% a %number% b", events[0].LogType)
	require.NotNil(t, events[0].Header)
	assert.Equal(t, "1", events[0].Header.Text)
}

func TestFramer_LeadingTokensFormUnheadedEvent(t *testing.T) {
	defs := []patternDef{{name: "number", source: `[0-9]+`}}

	events := frameEvents(t, "preamble\n1 a", defs)

	require.Len(t, events, 2)
	assert.Equal(t, "preamble\n", events[0].LogType)
	assert.Nil(t, events[0].Header)
	assert.Equal(t, "%number% a", events[1].LogType)
}

func TestFramer_NonHeaderVariablesNeverSplit(t *testing.T) {
	defs := []patternDef{
		{name: "never", source: `zzzz9999`},
		{name: "number", source: `[0-9]+`},
	}

	events := frameEvents(t, "1 a\n2 b", defs)

	require.Len(t, events, 1)
	assert.Equal(t, "%number% a\n%number% b", events[0].LogType)
	assert.Nil(t, events[0].Header)
}

func TestFramer_HeaderVariableInHeaderAndVariables(t *testing.T) {
	defs := []patternDef{{name: "number", source: `[0-9]+`}}

	events := frameEvents(t, "1 x 2", defs)

	require.Len(t, events, 1)
	event := events[0]
	require.NotNil(t, event.Header)
	assert.Equal(t, event.Variables[0], *event.Header)
	require.Len(t, event.Variables, 2)
}

func TestFramer_ExhaustedStaysExhausted(t *testing.T) {
	defs := []patternDef{{name: "number", source: `[0-9]+`}}

	scan := compileScanner(t, defs)
	fr := newFramer(newTokenizer("1", newDelimiterSet(DefaultDelimiters), scan))

	_, ok := fr.next()
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		event, ok := fr.next()
		assert.False(t, ok)
		assert.Nil(t, event)
	}
}

func TestNewLogEvent_Rendering(t *testing.T) {
	tokens := []Token{
		staticToken("a "),
		{Rule: "n", Text: "1", ruleIndex: 0},
		staticToken(" % b"),
	}

	event := newLogEvent(tokens)

	assert.Equal(t, "a %n% % b", event.LogType)
	require.Len(t, event.Variables, 1)
	assert.Equal(t, "n", event.Variables[0].Name)
}
